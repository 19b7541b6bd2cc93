package configuration

const (
	DEBUG          string = "debug"    // DEBUG (boolean) sets/returns if debugging is enabled or not
	INSECURE_HTTPS string = "insecure" // INSECURE_HTTPS (boolean) sets/returns if the network stack shall verify the certificate chain when making HTTPS requests
	INPUT_PATH     string = "path"     // INPUT_PATH (string) sets/returns the import source the application shall process: a folder, an archive or a text file of URLs

	// flags
	FLAG_PROJECT_ID    string = "project-id"    // FLAG_PROJECT_ID (int) sets/returns the id of an existing destination project
	FLAG_PROJECT_NAME  string = "project-name"  // FLAG_PROJECT_NAME (string) sets/returns the name used when the run creates its destination project
	FLAG_DATASET_ID    string = "dataset-id"    // FLAG_DATASET_ID (int) sets/returns the id of an existing destination dataset
	FLAG_DATASET_NAME  string = "dataset-name"  // FLAG_DATASET_NAME (string) sets/returns the name used when the run creates its destination dataset
	FLAG_REMOVE_SOURCE string = "remove-source" // FLAG_REMOVE_SOURCE (boolean) sets/returns if the team-files source shall be removed after a fully successful run
	FLAG_CONCURRENCY   string = "concurrency"   // FLAG_CONCURRENCY (int) sets/returns the number of parallel uploads, values below 2 keep the loop sequential
	FLAG_OPEN_BROWSER  string = "open"          // FLAG_OPEN_BROWSER (boolean) sets/returns if the destination project shall be opened in the web app after the run

	// mosaiq_ constants
	API_URL              string = "mosaiq_server"    // API_URL (string) sets/returns the API URL, the url returned will always be valid and normalized
	AUTHENTICATION_TOKEN string = "mosaiq_api_token" // AUTHENTICATION_TOKEN (string) sets/returns the API token (normally this value doesn't have to be used directly)
	//nolint:gosec // not a token value, a configuration key
	TEAM_ID       string = "mosaiq_team_id"      // TEAM_ID (int) sets/returns the team the application acts for
	WORKSPACE_ID  string = "mosaiq_workspace_id" // WORKSPACE_ID (int) sets/returns the workspace new projects are created in
	TASK_ID       string = "mosaiq_task_id"      // TASK_ID (int) sets/returns the platform task the application runs as, 0 outside of task runs
	DATA_DIR_PATH string = "mosaiq_data_path"    // DATA_DIR_PATH (string) returns the directory for staged and temporary files. It is guaranteed to be set and existing during a run
	TIMEOUT       string = "mosaiq_timeout_secs" // TIMEOUT (int) sets/returns the timeout in seconds for network requests
	LOG_LEVEL     string = "mosaiq_log_level"    // LOG_LEVEL (string) returns the log level based on zerolog levels (trace,debug,info,...)

	// task inputs, set by the platform when it launches an application
	TASK_INPUT_FILE   string = "mosaiq_file"   // TASK_INPUT_FILE (string) returns the team-files path the task was launched on, if any
	TASK_INPUT_FOLDER string = "mosaiq_folder" // TASK_INPUT_FOLDER (string) returns the team-files folder the task was launched on, if any

	// internal constants
	RAW_CMD_ARGS       string = "internal_raw_cmd_args"
	WEB_APP_URL        string = "internal_mosaiq_app"         // WEB_APP_URL (string) returns the URL of the web application and is derived from the API_URL
	MAX_RETRY_ATTEMPTS string = "internal_max_retry_attempts" // MAX_RETRY_ATTEMPTS (int) sets/returns how often the network layer retries retryable requests
	JOURNAL_FILE       string = "internal_journal_file"       // JOURNAL_FILE (string) sets/returns the sqlite file the run journal is kept in
	LOOKUP_CACHE_TTL   string = "internal_lookup_cache_ttl"   // LOOKUP_CACHE_TTL (int) sets/returns the time to live in seconds for cached project and dataset lookups
	IMPORT_POLICY_FILE string = "internal_import_policy_file" // IMPORT_POLICY_FILE (string) sets/returns a yaml policy file with additional exclude patterns for enumeration
)
