package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvp-joe/callscope/internal/codemodel"
)

func TestNoiseFilter_ShouldSkip(t *testing.T) {
	t.Parallel()

	f := NewNoiseFilter(
		[]string{"System", "Microsoft"},
		[]string{"ToString", "Equals", "GetHashCode", "GetType"},
	)

	tests := []struct {
		name   string
		member *codemodel.Member
		skip   bool
	}{
		{"framework root exact", &codemodel.Member{Name: "WriteLine", Namespace: "System"}, true},
		{"framework root nested", &codemodel.Member{Name: "Add", Namespace: "System.Collections.Generic"}, true},
		{"second framework root", &codemodel.Member{Name: "Log", Namespace: "Microsoft.Extensions.Logging"}, true},
		{"prefix is not a namespace segment", &codemodel.Member{Name: "Run", Namespace: "SystemTools"}, false},
		{"object protocol name", &codemodel.Member{Name: "ToString", Namespace: "Shop.Web"}, true},
		{"user method", &codemodel.Member{Name: "Place", Namespace: "Shop.Services"}, false},
		{"no namespace", &codemodel.Member{Name: "Render"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.skip, f.ShouldSkip(tc.member))
		})
	}
}

func TestNoiseFilter_Empty(t *testing.T) {
	t.Parallel()

	f := NewNoiseFilter(nil, nil)
	assert.False(t, f.ShouldSkip(&codemodel.Member{Name: "ToString", Namespace: "System"}))
}
