package domain

// Plan groups savers and the product catalog they are matched against.
type Plan struct {
	People   []Person         `yaml:"people" json:"people"`
	Products []SavingsProduct `yaml:"products" json:"products"`
}
