package session

type Options struct {
	SessionName string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SessionName: "memehub_session",
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithSessionName(name string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = name
	}
}
