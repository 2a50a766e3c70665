package model

type TemplateID string

// MemeTemplate is a read-only catalog entry describing a base image the
// editor can load.
type MemeTemplate interface {
	WithID[TemplateID]

	Name() string
	ImageURL() string
	TextBoxes() int
}

type ReadOnlyMemeTemplate struct {
	id        TemplateID
	name      string
	imageURL  string
	textBoxes int
}

// ID implements MemeTemplate.
func (t *ReadOnlyMemeTemplate) ID() TemplateID {
	return t.id
}

// Name implements MemeTemplate.
func (t *ReadOnlyMemeTemplate) Name() string {
	return t.name
}

// ImageURL implements MemeTemplate.
func (t *ReadOnlyMemeTemplate) ImageURL() string {
	return t.imageURL
}

// TextBoxes implements MemeTemplate.
func (t *ReadOnlyMemeTemplate) TextBoxes() int {
	return t.textBoxes
}

var _ MemeTemplate = &ReadOnlyMemeTemplate{}

func NewReadOnlyMemeTemplate(id TemplateID, name string, imageURL string, textBoxes int) *ReadOnlyMemeTemplate {
	return &ReadOnlyMemeTemplate{
		id:        id,
		name:      name,
		imageURL:  imageURL,
		textBoxes: textBoxes,
	}
}
