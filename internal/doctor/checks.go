package doctor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/conn-castle/vercel-installer/internal/config"
	"github.com/conn-castle/vercel-installer/internal/install"
	"github.com/conn-castle/vercel-installer/internal/messages"
	"github.com/conn-castle/vercel-installer/internal/stubs"
)

var loadConfigFunc = config.LoadOptional

// manifest is the subset of vercel.json the checks read.
type manifest struct {
	Functions map[string]struct {
		Runtime string `json:"runtime"`
	} `json:"functions"`
}

// CheckConfig loads the runtime catalog for root. The returned config is nil
// when loading fails.
func CheckConfig(root string, explicit string) ([]Result, *config.Config) {
	cfg, err := loadConfigFunc(root, explicit)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, cfg.Source(), len(cfg.Runtimes)),
	}}, cfg
}

// CheckManifest parses vercel.json and checks every function runtime against
// the catalog.
func CheckManifest(root string, catalog config.Catalog) []Result {
	data, result, ok := readProjectFile(root, install.ManifestPath, messages.DoctorCheckNameManifest)
	if !ok {
		return []Result{result}
	}
	if bytes.Contains(data, []byte(install.RuntimePlaceholder)) {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestPlaceholderFmt, install.ManifestPath, install.RuntimePlaceholder),
			Recommendation: messages.DoctorManifestRuntimeRecommend,
		}}
	}
	var parsed manifest
	if err := json.Unmarshal(data, &parsed); err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestInvalidFmt, install.ManifestPath, err),
			Recommendation: messages.DoctorManifestInvalidRecommend,
		}}
	}
	entry := install.EntryPointPath
	fn, ok := parsed.Functions[entry]
	if !ok || fn.Runtime == "" {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestNoRuntimeFmt, install.ManifestPath, entry),
			Recommendation: messages.DoctorManifestRuntimeRecommend,
		}}
	}

	var results []Result
	results = append(results, checkRuntime(catalog, fn.Runtime))
	results = append(results, checkRuntimesAgree(parsed, entry)...)
	return results
}

func checkRuntime(catalog config.Catalog, runtime string) Result {
	if label, ok := catalog.LabelFor(runtime); ok {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameRuntime,
			Message:   fmt.Sprintf(messages.DoctorRuntimeKnownFmt, install.ManifestPath, runtime, label),
		}
	}
	return Result{
		Status:         StatusWarn,
		CheckName:      messages.DoctorCheckNameRuntime,
		Message:        fmt.Sprintf(messages.DoctorRuntimeUnknownFmt, install.ManifestPath, runtime),
		Recommendation: messages.DoctorRuntimeUnknownRecommend,
	}
}

// checkRuntimesAgree warns when other functions pin a different runtime than
// the entry point.
func checkRuntimesAgree(parsed manifest, entry string) []Result {
	want := parsed.Functions[entry].Runtime
	names := make([]string, 0, len(parsed.Functions))
	for name := range parsed.Functions {
		names = append(names, name)
	}
	sort.Strings(names)

	var results []Result
	for _, name := range names {
		runtime := parsed.Functions[name].Runtime
		if name == entry || runtime == "" || runtime == want {
			continue
		}
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameRuntime,
			Message:        fmt.Sprintf(messages.DoctorManifestRuntimeMismatchFmt, install.ManifestPath, want, entry, runtime, name),
			Recommendation: messages.DoctorManifestRuntimeMismatchHint,
		})
	}
	return results
}

// CheckStubs compares the verbatim stubs against the files in root. Local
// edits are reported as warnings.
func CheckStubs(root string, source stubs.Source) []Result {
	var results []Result
	for _, stub := range install.StubSet() {
		if stub.Render {
			continue
		}
		data, result, ok := readProjectFile(root, stub.Dest, messages.DoctorCheckNameStub)
		if !ok {
			results = append(results, result)
			continue
		}
		want, err := source.Load(stub.Source)
		if err != nil {
			results = append(results, Result{
				Status:    StatusWarn,
				CheckName: messages.DoctorCheckNameStub,
				Message:   fmt.Sprintf(messages.DoctorStubUnavailableFmt, stub.Dest, err),
			})
			continue
		}
		if !bytes.Equal(data, want) {
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameStub,
				Message:        fmt.Sprintf(messages.DoctorFileDiffersFmt, stub.Dest),
				Recommendation: messages.DoctorFileDiffersRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameStub,
			Message:   fmt.Sprintf(messages.DoctorFileMatchesFmt, stub.Dest),
		})
	}
	return results
}

// readProjectFile reads rel under root. When ok is false, result holds the
// failure to report.
func readProjectFile(root string, rel string, checkName string) (data []byte, result Result, ok bool) {
	fullPath := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, Result{
				Status:         StatusFail,
				CheckName:      checkName,
				Message:        fmt.Sprintf(messages.DoctorMissingFileFmt, rel),
				Recommendation: messages.DoctorMissingFileRecommend,
			}, false
		}
		return nil, Result{
			Status:    StatusFail,
			CheckName: checkName,
			Message:   fmt.Sprintf(messages.DoctorReadFailedFmt, rel, err),
		}, false
	}
	if !info.Mode().IsRegular() {
		return nil, Result{
			Status:         StatusFail,
			CheckName:      checkName,
			Message:        fmt.Sprintf(messages.DoctorNotRegularFileFmt, rel),
			Recommendation: messages.DoctorNotRegularRecommend,
		}, false
	}
	data, err = os.ReadFile(fullPath)
	if err != nil {
		return nil, Result{
			Status:    StatusFail,
			CheckName: checkName,
			Message:   fmt.Sprintf(messages.DoctorReadFailedFmt, rel, err),
		}, false
	}
	return data, Result{}, true
}
