package imports

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	gitignore "github.com/sabhiram/go-gitignore"
	"gopkg.in/yaml.v3"

	"github.com/mosaiq/go-import-framework/internal/utils"
)

// Names of the optional files that restrict what a folder import picks up.
const (
	ignoreFileName = ".mosaiqignore"
	policyFileName = ".mosaiq"
)

// Enumerator turns an import source into the ordered list of work items the
// loop processes. The source kind is derived from the path: directories are
// listed, .txt files are read as one URL per line, anything else is treated
// as an archive and extracted into the data directory first.
type Enumerator struct {
	dataDir    string
	logger     *zerolog.Logger
	policyFile string
}

// EnumeratorOption configures an Enumerator.
type EnumeratorOption func(*Enumerator)

// WithPolicyFile adds a policy file with exclude patterns that applies to
// every enumerated folder, in addition to any policy found in the folder.
func WithPolicyFile(path string) EnumeratorOption {
	return func(e *Enumerator) {
		e.policyFile = path
	}
}

// NewEnumerator creates an Enumerator extracting archives below dataDir.
func NewEnumerator(dataDir string, logger *zerolog.Logger, options ...EnumeratorOption) *Enumerator {
	if logger == nil {
		logger = utils.Ptr(zerolog.Nop())
	}

	enumerator := &Enumerator{
		dataDir: dataDir,
		logger:  logger,
	}

	for _, option := range options {
		option(enumerator)
	}

	return enumerator
}

// ListSource lists the work items of an import source of any supported
// shape. A missing source is a fatal SourceNotFoundError.
func (e *Enumerator) ListSource(path string) ([]WorkItem, error) {
	if path == "" {
		return nil, ErrEmptySource
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, NewSourceNotFoundError(path)
	}

	switch {
	case info.IsDir():
		return e.ListFolder(path)
	case strings.EqualFold(filepath.Ext(path), ".txt"):
		return e.ListTextFile(path)
	default:
		return e.ListArchive(path)
	}
}

// ListFolder lists every regular file directly in dir, in name order,
// skipping entries matched by the ignore rules.
func (e *Enumerator) ListFolder(dir string) ([]WorkItem, error) {
	return e.listDir(dir, SourceLocalFile)
}

// ListTextFile reads one remote URL per non-blank line and names the items
// by line index, keeping the URL's extension.
func (e *Enumerator) ListTextFile(path string) ([]WorkItem, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var items []WorkItem
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		items = append(items, WorkItem{
			Name: fmt.Sprintf("%03d%s", len(items), urlExt(line)),
			Kind: SourceRemoteURL,
			URL:  line,
		})
	}

	return items, nil
}

// ListArchive extracts the archive into the data directory and lists the
// extracted entries. Extraction failures are fatal for the run.
func (e *Enumerator) ListArchive(path string) ([]WorkItem, error) {
	extractDir := filepath.Join(e.dataDir, archiveStem(path))
	if err := extractArchive(path, extractDir); err != nil {
		return nil, err
	}

	e.logger.Debug().Str("archive", path).Str("dir", extractDir).Msg("extracted source archive")
	return e.listDir(extractDir, SourceArchiveEntry)
}

func (e *Enumerator) listDir(dir string, kind SourceKind) ([]WorkItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	rules := e.ignoreRules(dir)

	items := make([]WorkItem, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		name := entry.Name()
		if rules.MatchesPath(name) {
			e.logger.Debug().Str("name", name).Msg("entry excluded by ignore rules")
			continue
		}

		items = append(items, WorkItem{
			Name: name,
			Kind: kind,
			Path: filepath.Join(dir, name),
		})
	}

	return items, nil
}

// ignoreRules compiles the exclude rules that apply to a folder: hidden
// files, the folder's ignore file and policy file, and the configured
// policy file.
func (e *Enumerator) ignoreRules(dir string) *gitignore.GitIgnore {
	lines := []string{".*"}

	if content, err := os.ReadFile(filepath.Join(dir, ignoreFileName)); err == nil {
		lines = append(lines, parseIgnoreLines(content)...)
	}

	for _, policyFile := range []string{filepath.Join(dir, policyFileName), e.policyFile} {
		if policyFile == "" {
			continue
		}
		content, err := os.ReadFile(policyFile)
		if err != nil {
			continue
		}
		lines = append(lines, e.parsePolicyExcludes(content, policyFile)...)
	}

	return gitignore.CompileIgnoreLines(lines...)
}

// parseIgnoreLines extracts the rules from a gitignore style file.
func parseIgnoreLines(content []byte) []string {
	var rules []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		rules = append(rules, strings.TrimSpace(line))
	}
	return rules
}

// parsePolicyExcludes extracts the exclude patterns from a yaml policy file.
func (e *Enumerator) parsePolicyExcludes(content []byte, path string) []string {
	type policyRules struct {
		Exclude struct {
			Global []string `yaml:"global"`
		} `yaml:"exclude"`
	}

	var rules policyRules
	if err := yaml.Unmarshal(content, &rules); err != nil {
		e.logger.Error().Err(err).Str("path", path).Msg("failed to parse import policy")
		return nil
	}

	return rules.Exclude.Global
}
