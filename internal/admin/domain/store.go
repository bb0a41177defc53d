package domain

// Store is a physical retail location whose prices the platform tracks.
type Store struct {
	ID        string
	Name      string
	Address   string
	City      string
	Country   string
	Email     string
	Phone     string
	Latitude  float64
	Longitude float64
}
