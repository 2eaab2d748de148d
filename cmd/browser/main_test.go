package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsResponseParsesRawHttpResponse(t *testing.T) {
	resp, err := asResponse("HTTP/1.1 200 OK\n\n<html></html>")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "<html></html>", resp.Body)
}

func TestAsResponseWrapsRawHTMLAsSyntheticResponse(t *testing.T) {
	resp, err := asResponse("<html><body>hi</body></html>")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "<html><body>hi</body></html>", resp.Body)
}
