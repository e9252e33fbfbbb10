package dto

type DoorOutput struct {
	Mark       string `json:"mark" yaml:"mark"`
	Location   string `json:"location" yaml:"location"`
	FireRating string `json:"fire_rating" yaml:"fire_rating"`
	Material   string `json:"material" yaml:"material"`
	WidthMM    string `json:"width_mm,omitempty" yaml:"width_mm,omitempty"`
	HeightMM   string `json:"height_mm,omitempty" yaml:"height_mm,omitempty"`
}

type ScheduleOutput struct {
	Doors []DoorOutput
}

type ExportInput struct {
	Doors  []DoorOutput
	Format string
}
