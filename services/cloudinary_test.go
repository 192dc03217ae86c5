package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "standard url",
			url:  "https://res.cloudinary.com/demo/image/upload/v1234/avatars/abc.jpg",
			want: "avatars/abc",
		},
		{
			name: "nested folder",
			url:  "https://res.cloudinary.com/demo/image/upload/v99/hcm-chatbot/avatars/xyz.png",
			want: "hcm-chatbot/avatars/xyz",
		},
		{
			name: "no extension",
			url:  "https://res.cloudinary.com/demo/image/upload/v1/avatars/abc",
			want: "avatars/abc",
		},
		{
			name: "missing upload marker",
			url:  "https://res.cloudinary.com/demo/image/v1234/avatars/abc.jpg",
			want: "",
		},
		{
			name: "upload at end",
			url:  "https://res.cloudinary.com/demo/image/upload",
			want: "",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
		{
			name: "not a cloudinary shape",
			url:  "https://example.com/images/photo.jpg",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPublicIDFromURL(tt.url))
		})
	}
}
