package util

import (
	"os"
	"strconv"
	"strings"
)

func DebugEnabled() bool {
	return etb("SHOPFRONT_DEBUG")
}

func HttpTraceEnabled() bool {
	return etb("SHOPFRONT_HTTP_TRACE")
}

func etb(envName string) bool {
	v, ok := os.LookupEnv(envName)
	if !ok {
		return false
	}

	bv, err := strconv.ParseBool(v)

	return err == nil && bv
}

func GetEnvOrDefault(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}
