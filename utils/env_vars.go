package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type envType interface {
	~string | ~int | ~bool | ~float64
}

// GetEnv reads an environment variable and converts it to the type of the default
// value. It panics if the variable is set but cannot be parsed.
func GetEnv[T envType](envVarName string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		return defaultValue
	}

	value, err := parseEnv[T](envValue)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid: '%s' (%s)", envVarName, envValue, err))
	}
	return value
}

func GetRequiredEnv[T envType](envVarName string) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVarName)
	}

	value, err := parseEnv[T](envValue)
	if err != nil {
		log.Fatalf("%s environment variable is not valid: '%s' (%s)", envVarName, envValue, err)
	}
	return value
}

func parseEnv[T envType](envValue string) (T, error) {
	var value T
	switch p := any(&value).(type) {
	case *string:
		*p = envValue
	case *int:
		i, err := strconv.Atoi(envValue)
		if err != nil {
			return value, err
		}
		*p = i
	case *bool:
		b, err := strconv.ParseBool(envValue)
		if err != nil {
			return value, err
		}
		*p = b
	case *float64:
		f, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			return value, err
		}
		*p = f
	default:
		return value, fmt.Errorf("unsupported type %T", value)
	}
	return value, nil
}
