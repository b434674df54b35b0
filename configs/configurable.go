package configs

// Configurable types are read from configuration files at ConfigPath.
type Configurable interface {
	ConfigPath() string
}

// Lookup returns the first value at T's path, or the zero value.
func Lookup[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigPath())
}
