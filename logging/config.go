package logging

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Config contains the configurable items for this package
type Config struct {
	Environment string `long:"environment" choice:"dev" choice:"prod" description:"Logging environment: dev (console) or prod (json)"`
}

// NewDefaultConfig creates an instance of the package-specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Environment: EnvDev,
	}
}
