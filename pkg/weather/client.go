package weather

// Report is a normalized current-conditions reading for one city.
// Temperatures are Fahrenheit (the dashboard renders imperial units).
type Report struct {
	Location    string
	Temperature float64
	FeelsLike   float64
	Humidity    int
	Description string
	Icon        string
}

type Client interface {
	CurrentByCity(city string) (*Report, error)
	Name() string
}
