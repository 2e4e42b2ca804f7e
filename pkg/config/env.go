package config

// EnvPrefix is the envconfig prefix applied to every variable.
const EnvPrefix = "DAVINCI"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names, exported so tests can seed them.
const (
	EnvAppEnv     = "DAVINCI_APP_ENV"
	EnvPort       = "DAVINCI_APP_PORT"
	EnvJWTSecret  = "DAVINCI_JWT_SECRET"
	EnvJWTIssuer  = "DAVINCI_JWT_ISSUER"
	EnvJWTExpMins = "DAVINCI_JWT_EXPIRATION_MINUTES"

	EnvSimulationEnabled = "DAVINCI_SIMULATION_ENABLED"
	EnvSimulationMin     = "DAVINCI_SIMULATION_DELAY_MIN"
	EnvSimulationMax     = "DAVINCI_SIMULATION_DELAY_MAX"
)
