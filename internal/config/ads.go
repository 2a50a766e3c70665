package config

type Analytics struct {
	Enabled       bool   `env:"ENABLED,expand" envDefault:"false"`
	MeasurementID string `env:"MEASUREMENT_ID,expand"`
}

type Ads struct {
	Enabled  bool   `env:"ENABLED,expand" envDefault:"false"`
	ClientID string `env:"CLIENT_ID,expand"`
	SlotID   string `env:"SLOT_ID,expand"`
}
