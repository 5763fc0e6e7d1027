package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPhoto(t *testing.T) {
	tests := []struct {
		name     string
		dataStem string
		pngStems []string
		want     string
		wantOK   bool
	}{
		{
			name:     "exact stem equality",
			dataStem: "alice",
			pngStems: []string{"alice"},
			want:     "alice",
			wantOK:   true,
		},
		{
			name:     "suffix convention pairs matching name",
			dataStem: "jane-resume-data",
			pngStems: []string{"bob-profile-photo", "jane-profile-photo"},
			want:     "jane-profile-photo",
			wantOK:   true,
		},
		{
			name:     "suffix convention rejects different name",
			dataStem: "jane-resume-data",
			pngStems: []string{"bob-profile-photo"},
			wantOK:   false,
		},
		{
			name:     "prefix convention",
			dataStem: "resume-jane",
			pngStems: []string{"profile-jane"},
			want:     "profile-jane",
			wantOK:   true,
		},
		{
			name:     "prefix convention rejects different name",
			dataStem: "resume-jane",
			pngStems: []string{"profile-bob"},
			wantOK:   false,
		},
		{
			name:     "shared leading token with domain keywords",
			dataStem: "jane-resume-2024",
			pngStems: []string{"jane-profile-pic"},
			want:     "jane-profile-pic",
			wantOK:   true,
		},
		{
			name:     "shared token with underscore separator",
			dataStem: "jane_resume_data",
			pngStems: []string{"jane_profile_shot"},
			want:     "jane_profile_shot",
			wantOK:   true,
		},
		{
			name:     "token rule needs both keywords",
			dataStem: "jane-resume-2024",
			pngStems: []string{"jane-headshot"},
			wantOK:   false,
		},
		{
			name:     "token rule rejects different tokens",
			dataStem: "jane-resume-2024",
			pngStems: []string{"bob-profile-pic"},
			wantOK:   false,
		},
		{
			name:     "exact equality wins over conventions",
			dataStem: "alice-resume-data",
			pngStems: []string{"alice-profile-photo", "alice-resume-data"},
			want:     "alice-resume-data",
			wantOK:   true,
		},
		{
			name:     "generic stems never pair",
			dataStem: "resume",
			pngStems: []string{"photo"},
			wantOK:   false,
		},
		{
			name:     "no candidates",
			dataStem: "jane-resume-data",
			pngStems: nil,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchPhoto(tt.dataStem, tt.pngStems)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLeadingToken(t *testing.T) {
	assert.Equal(t, "jane", leadingToken("jane-resume-data"))
	assert.Equal(t, "jane", leadingToken("jane_resume_data"))
	assert.Equal(t, "jane", leadingToken("jane"))
}
