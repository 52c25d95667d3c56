package domain

import (
	"fmt"
)

// APIVersion names a versioned route group, e.g. /v1.
type APIVersion string

const (
	APIVersionV1 APIVersion = "v1"
)

var versionOrder = map[APIVersion]int{
	APIVersionV1: 1,
}

// ParseAPIVersion validates and returns an APIVersion.
func ParseAPIVersion(s string) (APIVersion, error) {
	v := APIVersion(s)
	if _, ok := versionOrder[v]; !ok {
		return "", fmt.Errorf("unknown API version: %s", s)
	}
	return v, nil
}

func (v APIVersion) String() string {
	return string(v)
}

// IsNil returns true if the API version is empty.
func (v APIVersion) IsNil() bool {
	return v == ""
}

// SupportedVersions lists the route groups the server mounts.
func SupportedVersions() []APIVersion {
	return []APIVersion{APIVersionV1}
}
