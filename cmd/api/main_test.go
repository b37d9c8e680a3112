package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/services"
)

func TestNewFileNamer(t *testing.T) {
	assert.IsType(t, services.UUIDNamer{}, newFileNamer(config.NamingUUID))
	assert.IsType(t, &services.TimestampNamer{}, newFileNamer(config.NamingTimestamp))
	assert.IsType(t, &services.TimestampNamer{}, newFileNamer(""))
}
