package ft8token

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// pflag (not unreasonably) assumes it only ever gets called once.
// Running the tool's main repeatedly in tests means resetting it each time.
func setupPflag(args []string) {
	os.Args = args
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
}

func Test_DescribeToken(t *testing.T) {
	var r = DescribeToken("VE3/AB0CD", "")
	assert.Equal(t, KindCall, r.Kind)
	assert.Equal(t, "AB0CD", r.BaseCall)
	assert.Nil(t, r.Latitude)

	r = DescribeToken("EM16", "FN42")
	assert.Equal(t, KindGrid, r.Kind)
	assert.Empty(t, r.BaseCall)
	require.NotNil(t, r.Latitude)
	require.NotNil(t, r.Longitude)
	require.NotNil(t, r.DistanceKm)
	require.NotNil(t, r.BearingDeg)
	assert.InDelta(t, 36.5, *r.Latitude, 1e-9)
	assert.InDelta(t, -97.0, *r.Longitude, 1e-9)
	assert.InDelta(t, 2318, *r.DistanceKm, 2)
	assert.InDelta(t, 262, *r.BearingDeg, 0.2)

	// Grid shaped, but not a real field letter.
	r = DescribeToken("ZZ11", "FN42")
	assert.Equal(t, KindGrid, r.Kind)
	assert.Nil(t, r.Latitude)
	assert.Nil(t, r.DistanceKm)
}

func Test_ft8tokenRunText(t *testing.T) {
	var cfg = DefaultConfig()
	var out bytes.Buffer

	require.NoError(t, ft8tokenRun(cfg, []string{"KK5JY/R", "R-05", "<...>"}, nil, &out))

	var lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "KK5JY/R      call           base KK5JY", lines[0])
	assert.Equal(t, "R-05         roger|report", lines[1])
	assert.Equal(t, "<...>        none", lines[2])
}

func Test_ft8tokenRunStdin(t *testing.T) {
	var cfg = DefaultConfig()
	var out bytes.Buffer
	var in = strings.NewReader("KK5JY N5OSL EM16\n\nN5OSL KK5JY  RR73\n")

	require.NoError(t, ft8tokenRun(cfg, nil, in, &out))

	var lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[2], "EM16         grid"))
	assert.True(t, strings.HasPrefix(lines[5], "RR73         roger|73"))
}

func Test_ft8tokenRunYAML(t *testing.T) {
	var cfg = DefaultConfig()
	cfg.Format = "yaml"
	cfg.HomeGrid = "EM16"

	var out bytes.Buffer
	require.NoError(t, ft8tokenRun(cfg, []string{"kk5jy/r", "FN42"}, nil, &out))

	var dec = yaml.NewDecoder(&out)

	var first struct {
		Token    string   `yaml:"token"`
		Kind     []string `yaml:"kind"`
		BaseCall string   `yaml:"base_call"`
	}
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, "kk5jy/r", first.Token)
	assert.Equal(t, []string{"call"}, first.Kind)
	assert.Equal(t, "KK5JY", first.BaseCall)

	var second map[string]any
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, "FN42", second["token"])
	assert.Contains(t, second, "distance_km")
	assert.Contains(t, second, "bearing_deg")
	assert.NotContains(t, second, "base_call")
}

func Test_ft8tokenRunTimestamp(t *testing.T) {
	var cfg = DefaultConfig()
	cfg.TimestampFormat = "T%Y"

	var out bytes.Buffer
	require.NoError(t, ft8tokenRun(cfg, []string{"73"}, nil, &out))

	assert.True(t, strings.HasPrefix(out.String(), "T"+time.Now().Format("2006")+" 73"))
}

func Test_Ft8TokenMainArgs(t *testing.T) {
	setupPflag([]string{"ft8token", "--home-grid", "FN42", "EM16", "n7ul/qrp"})

	var output = CaptureOutput(t, Ft8TokenMain)

	assert.Contains(t, output, "EM16         grid           36.50 -97.00 2318 km 262 deg")
	assert.Contains(t, output, "base N7UL")
}

func Test_Ft8TokenMainSelfTest(t *testing.T) {
	setupPflag([]string{"ft8token", "--self-test", "-f", "yaml"})

	var output = CaptureOutput(t, Ft8TokenMain)

	assert.Contains(t, output, "ab0cd/33")
	assert.Contains(t, output, "base_call: AB0CD")
	assert.Equal(t, len(selfTestTokens), strings.Count(output, "token:"))
}

func Test_Ft8TokenMainConfigFile(t *testing.T) {
	var path = writeConfig(t, "format: yaml\n")

	setupPflag([]string{"ft8token", "-c", path, "RRR"})

	AssertOutputContains(t, Ft8TokenMain, "- roger")
}

func Test_Ft8TokenMainVersion(t *testing.T) {
	setupPflag([]string{"ft8token", "--version"})

	AssertOutputContains(t, Ft8TokenMain, "ft8token - Version")
}
