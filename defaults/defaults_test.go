// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package defaults

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/psychopredict/models"
)

func TestBuiltin_CoversEveryFieldButAge(t *testing.T) {
	d := Builtin()
	for _, name := range models.FeatureFields {
		if name == models.FieldAge {
			assert.NotContains(t, d, name)
			continue
		}
		assert.Contains(t, d, name)
	}
	assert.Equal(t, "Somewhat easy", d[models.FieldLeave])
	assert.Equal(t, "Don't know", d[models.FieldAnonymity])
}

func TestApply(t *testing.T) {
	submitted := url.Values{
		models.FieldAge:    {"29"},
		models.FieldLeave:  {"Very difficult"},
		models.FieldGender: {""},
		"csrf":             {"ignored"},
	}

	values := Builtin().Apply(submitted)

	assert.Equal(t, "29", values[models.FieldAge])
	assert.Equal(t, "Very difficult", values[models.FieldLeave])
	assert.Equal(t, "", values[models.FieldGender], "present but empty is kept")
	assert.Equal(t, "Maybe", values[models.FieldPhysHealthInterview])
	assert.NotContains(t, values, "csrf")
	assert.Len(t, values, len(models.FeatureFields))
}

func TestApply_MissingAgeStaysMissing(t *testing.T) {
	values := Builtin().Apply(url.Values{})
	assert.NotContains(t, values, models.FieldAge)
}

func TestLoad_OverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte("leave: Very easy\nremote_work: \"Yes\"\n"), 0o644))

	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Very easy", d[models.FieldLeave])
	assert.Equal(t, "Yes", d[models.FieldRemoteWork])
	assert.Equal(t, "Some of them", d[models.FieldCoworkers])
}

func TestLoad_EmptyPath(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Builtin(), d)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_RejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte("favourite_colour: blue\n"))
	assert.ErrorContains(t, err, "favourite_colour")
}
