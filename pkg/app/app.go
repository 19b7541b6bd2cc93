package app

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/mosaiq/go-import-framework/internal/api"
	"github.com/mosaiq/go-import-framework/internal/constants"
	"github.com/mosaiq/go-import-framework/pkg/configuration"
	"github.com/mosaiq/go-import-framework/pkg/imports"
	"github.com/mosaiq/go-import-framework/pkg/imports/journal"
	"github.com/mosaiq/go-import-framework/pkg/networking"
	"github.com/mosaiq/go-import-framework/pkg/platform"
)

// initConfiguration initializes the configuration with initial values.
func initConfiguration(config configuration.Configuration, logger *zerolog.Logger) {
	if logger == nil {
		logger = &zlog.Logger
	}

	config.AddAlternativeKeys(configuration.AUTHENTICATION_TOKEN, []string{"mosaiq_token", "api_token"})

	config.AddDefaultValue(configuration.API_URL, func(existingValue any) any {
		urlString := constants.MOSAIQ_DEFAULT_API_URL

		if existingValue != nil {
			if temp, ok := existingValue.(string); ok && temp != "" {
				urlString = temp
			}
		}

		apiString, err := api.GetCanonicalApiUrlFromString(urlString)
		if err != nil {
			logger.Print("Failed to determine default value for \"API_URL\":", err)
			return urlString
		}

		return apiString
	})

	config.AddDefaultValue(configuration.WEB_APP_URL, func(existingValue any) any {
		if existingValue != nil {
			return existingValue
		}

		canonicalApiUrl := config.GetString(configuration.API_URL)
		appUrl, err := api.DeriveAppUrl(canonicalApiUrl)
		if err != nil {
			logger.Print("Failed to determine default value for \"WEB_APP_URL\":", err)
		}

		return appUrl
	})

	config.AddDefaultValue(configuration.DATA_DIR_PATH, func(existingValue any) any {
		if existingValue != nil {
			return existingValue
		}

		return filepath.Join(os.TempDir(), "mosaiq-import")
	})

	config.AddDefaultValue(configuration.LOG_LEVEL, configuration.StandardDefaultValueFunction("info"))
	config.AddDefaultValue(configuration.FLAG_CONCURRENCY, configuration.StandardDefaultValueFunction(1))
	config.AddDefaultValue(configuration.TIMEOUT, configuration.StandardDefaultValueFunction(600))
	config.AddDefaultValue(configuration.MAX_RETRY_ATTEMPTS, configuration.StandardDefaultValueFunction(3))
	config.AddDefaultValue(configuration.LOOKUP_CACHE_TTL, configuration.StandardDefaultValueFunction(60))
}

// CreateAppConfiguration creates the configuration an application runs with:
// environment variables, env files and config files, plus defaults derived
// from the platform URL.
func CreateAppConfiguration() configuration.Configuration {
	configuration.LoadEnvFiles(imports.EnvFileLocal, imports.EnvFileUser)

	config := configuration.New()
	initConfiguration(config, nil)

	return config
}

// CreateApp assembles an App with production collaborators around the given
// configuration: a scrubbing console logger, network access, the platform
// client and the run journal.
func CreateApp(descriptor *imports.Descriptor, config configuration.Configuration, options ...imports.AppOption) (*imports.App, error) {
	if descriptor == nil {
		return nil, errors.New("descriptor must not be nil")
	}

	initConfiguration(config, nil)

	logger := CreateLogger(config, os.Stderr, nil)

	network := networking.NewNetworkAccess(config)
	network.SetLogger(logger)
	network.SetUserAgent(networking.UserAgent(networking.UaWithApplication(descriptor.Slug, descriptor.Version)))

	client := platform.NewClient(
		platform.Config{BaseURL: config.GetString(configuration.API_URL)},
		platform.WithHTTPClient(network.GetHttpClient()),
		platform.WithLogger(logger),
		platform.WithLookupCacheTTL(time.Duration(config.GetInt(configuration.LOOKUP_CACHE_TTL))*time.Second),
	)

	// task runs forward error logs to the platform task
	if taskID := config.GetInt(configuration.TASK_ID); taskID != 0 {
		logger = CreateLogger(config, os.Stderr, client.Tasks())
		network.SetLogger(logger)
	}

	appOptions := []imports.AppOption{
		imports.WithConfiguration(config),
		imports.WithLogger(logger),
		imports.WithNetworkAccess(network),
		imports.WithPlatform(client),
	}

	runJournal, err := journal.Open(config, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to open run journal")
	} else {
		appOptions = append(appOptions, imports.WithJournal(runJournal))
	}

	return imports.NewApp(descriptor, append(appOptions, options...)...)
}
