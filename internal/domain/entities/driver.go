package entities

// ProvisionedDriver represents a driver executable extracted onto disk
type ProvisionedDriver struct {
	Name     string
	Version  string
	Platform string
	Path     string // absolute path to the executable
	Dir      string // extraction directory that contains it
}
