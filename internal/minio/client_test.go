package minio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	c := &Client{bucket: "project-images", baseURL: baseURL("localhost:9000/", false)}
	assert.Equal(t, "http://localhost:9000/project-images/project-images/1.png", c.PublicURL("project-images/1.png"))

	c.baseURL = baseURL("cdn.example.com", true)
	assert.Equal(t, "https://cdn.example.com/project-images/a.mp4", c.PublicURL("a.mp4"))
}
