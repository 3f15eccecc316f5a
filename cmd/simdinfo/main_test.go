package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/cache"
)

var sample = report{
	Arch:  "amd64",
	Level: "AVX2",
	Features: []featureRow{
		{Name: "sse2", Bit: 1, Detected: true},
		{Name: "avx512f", Bit: 16, Detected: false},
	},
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "text", sample))

	out := buf.String()
	assert.Contains(t, out, "arch:  amd64")
	assert.Contains(t, out, "level: AVX2")
	assert.Regexp(t, `sse2\s+1\s+yes`, out)
	assert.Regexp(t, `avx512f\s+16\s+no`, out)
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "JSON", sample))

	var got report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "yaml", sample))

	var got report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestRenderUnknownFormat(t *testing.T) {
	assert.EqualError(t, render(io.Discard, "xml", sample), `unknown format "xml"`)
}

func TestBuildReport(t *testing.T) {
	all := buildReport(true)
	assert.Len(t, all.Features, len(cpu.AllFeatures()))

	detected := buildReport(false)
	for _, f := range detected.Features {
		assert.True(t, f.Detected, f.Name)
	}
	assert.Len(t, detected.Features, len(cpu.Detected()))
}

func TestCheckFeatures(t *testing.T) {
	missing, unknown := checkFeatures([]string{"definitely-not-a-feature"})
	assert.Empty(t, missing)
	assert.Equal(t, []string{"definitely-not-a-feature"}, unknown)

	for _, f := range cpu.Detected() {
		missing, unknown := checkFeatures([]string{f.String()})
		assert.Empty(t, missing, f.String())
		assert.Empty(t, unknown, f.String())
	}
}

func TestDiff(t *testing.T) {
	all := cpu.AllFeatures()
	if len(all) == 0 {
		t.Skip("no features cataloged on this GOARCH")
	}
	var a, b cache.Initializer
	a.Set(uint32(all[0]))

	assert.Empty(t, diff(a, a))
	assert.Equal(t, []mismatch{{Feature: all[0].String(), Sys: true, CPUID: false}}, diff(a, b))
}

func TestPrintMismatches(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printMismatches(&buf, nil))
	assert.Equal(t, "detectors agree\n", buf.String())

	buf.Reset()
	require.NoError(t, printMismatches(&buf, []mismatch{{Feature: "sha", Sys: false, CPUID: true}}))
	assert.Regexp(t, `sha\s+platform=false\s+cpuid=true`, buf.String())
}

func TestAppListJSON(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	envFile := filepath.Join(t.TempDir(), "missing.env")
	err := app.Run(context.Background(), []string{"simdinfo", "--env-file", envFile, "list", "--all", "--format", "json"})
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got.Features, len(cpu.AllFeatures()))
}

func TestAppCheckUnknownFeatureExitsOne(t *testing.T) {
	app := newApp()
	app.Writer = io.Discard
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	envFile := filepath.Join(t.TempDir(), "missing.env")
	err := app.Run(context.Background(), []string{"simdinfo", "--env-file", envFile, "check", "definitely-not-a-feature"})

	var exit cli.ExitCoder
	require.True(t, errors.As(err, &exit), "got %v", err)
	assert.Equal(t, 1, exit.ExitCode())
	assert.Contains(t, err.Error(), "definitely-not-a-feature")
}

func TestAppKernels(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	envFile := filepath.Join(t.TempDir(), "missing.env")
	require.NoError(t, app.Run(context.Background(), []string{"simdinfo", "--env-file", envFile, "kernels"}))
	assert.Contains(t, buf.String(), "DotProduct")
	assert.Contains(t, buf.String(), "generic")
}

func TestMetricsHandler(t *testing.T) {
	h, err := newMetricsHandler()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "algosimd_cpu_detect_calls_total"))
	assert.True(t, strings.Contains(body, "algosimd_cpu_simd_level"))
}
