//nolint:forbidigo // demo script
package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/mosaiq/go-import-framework/internal/presenters"
	"github.com/mosaiq/go-import-framework/pkg/configuration"
	"github.com/mosaiq/go-import-framework/pkg/imports"
	"github.com/mosaiq/go-import-framework/pkg/platform"
)

// Runs the import loop as a library against the in-memory fake platform.
// No credentials or network access required.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	srcDir, err := writeSampleImages(3)
	if err != nil {
		return fmt.Errorf("failed to write sample images: %w", err)
	}
	defer os.RemoveAll(srcDir)

	config := configuration.NewInMemory()
	config.Set(configuration.DATA_DIR_PATH, filepath.Join(os.TempDir(), "mosaiq-import-example"))
	config.Set(configuration.TEAM_ID, 1)
	config.Set(configuration.WORKSPACE_ID, 1)
	config.Set(configuration.INPUT_PATH, srcDir)
	config.Set(configuration.FLAG_PROJECT_NAME, "Demo Project")

	fake := platform.NewFakePlatform()

	descriptor := &imports.Descriptor{
		Name:         "Import Example",
		Slug:         "import-example",
		Version:      "1.0.0",
		PathRequired: true,
	}

	app, err := imports.NewApp(descriptor,
		imports.WithConfiguration(config),
		imports.WithPlatform(fake),
	)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}

	ctx := context.Background()
	result, err := app.Run(ctx)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	project, err := fake.Projects().Get(ctx, result.ProjectID)
	if err != nil {
		return err
	}
	dataset, err := fake.Datasets().Get(ctx, result.DatasetID)
	if err != nil {
		return err
	}

	summary, err := presenters.RenderImportSummary(result, project, dataset, srcDir)
	if err != nil {
		return err
	}
	fmt.Println(summary)
	return nil
}

// writeSampleImages drops n tiny PNGs into a fresh temp directory and
// returns its path. The caller removes the directory when done.
func writeSampleImages(n int) (string, error) {
	dir, err := os.MkdirTemp("", "mosaiq-sample-images-*")
	if err != nil {
		return "", err
	}

	for i := 0; i < n; i++ {
		img := image.NewRGBA(image.Rect(0, 0, 16, 16))
		shade := uint8(60 * (i + 1))
		for x := 0; x < 16; x++ {
			for y := 0; y < 16; y++ {
				img.Set(x, y, color.RGBA{R: shade, G: 120, B: 200, A: 255})
			}
		}

		file, err := os.Create(filepath.Join(dir, fmt.Sprintf("sample-%03d.png", i+1)))
		if err != nil {
			return "", err
		}
		if err := png.Encode(file, img); err != nil {
			file.Close()
			return "", err
		}
		if err := file.Close(); err != nil {
			return "", err
		}
	}

	return dir, nil
}
