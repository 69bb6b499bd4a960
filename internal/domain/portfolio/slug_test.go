package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Membangun API dengan Go!  ", "membangun-api-dengan-go"},
		{"Café & Crème brûlée", "cafe-creme-brulee"},
		{"Next.js 14 -- App Router", "next-js-14-app-router"},
		{"---", ""},
		{"already-a-slug", "already-a-slug"},
		{"UPPER_case__mix", "upper-case-mix"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
