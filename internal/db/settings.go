package db

// Settings describes one warehouse connection. The password arrives already
// resolved; nothing in this package reads the environment or logs credential
// material.
type Settings struct {
	Driver   string
	Host     string
	Port     int
	Database string
	User     string
	Password string
	Params   map[string]string
}
