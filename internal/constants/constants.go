package constants

const MOSAIQ_DEFAULT_API_URL = "https://api.mosaiq.io"
const MOSAIQ_DOCS_URL = "https://docs.mosaiq.io"
const MOSAIQ_DOCS_IMPORT_PATH = "/import/getting-started"
