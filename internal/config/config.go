package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Profile/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Profile"
	AppID             = "com.github.tartampluch.go-profile"
	KeyringService    = "com.github.tartampluch.go-profile"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion       = "version"
	FlagDebug         = "debug"
	FlagNormalize     = "normalize"
	FlagDescVersion   = "Show application version and exit"
	FlagDescDebug     = "Enable debug logging to stdout"
	FlagDescNormalize = "Print the DD.MM.YYYY form of a date value and exit (repeatable)"
	MsgVersionOutput  = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Preferences
// -----------------------------------------------------------------------------

const (
	PrefCardDAVURL = "carddav_url"
	PrefUsername   = "username"
	PrefLanguage   = "language"
	PrefInterval   = "refresh_interval_min"
	PrefServerPort = "server_port"
	PrefSourceMode = "source_mode"
	PrefLocalPath  = "local_path"
	PrefLastRun    = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "ru"}

// -----------------------------------------------------------------------------
// Window & Layout Constants
// -----------------------------------------------------------------------------

const (
	SettingsWindowWidth = 600
	EditorWindowWidth   = 520

	StaffWinWidth  = 620
	StaffWinHeight = 420

	// Staff table column IDs
	ColIDName         = 0
	ColIDBirthDate    = 1
	ColIDCompleteness = 2
	StaffColumnCount  = 3

	ColWidthName         = 260
	ColWidthBirthDate    = 140
	ColWidthCompleteness = 140

	TablePlaceholder  = "Cell Content"
	HeaderPlaceholder = "Header"
	SortIconAsc       = " ▲"
	SortIconDesc      = " ▼"

	LayoutColumnsDouble = 2
	LayoutColumnsTriple = 3

	// Completeness indicator as displayed in the profile editor.
	EditorIndicatorSize = 96
)

// -----------------------------------------------------------------------------
// Date Selector
// -----------------------------------------------------------------------------

const (
	// DateSeparator splits the canonical DD.MM.YYYY string.
	DateSeparator = "."

	// MaxYearLength is the number of characters kept from the year input.
	MaxYearLength = 4

	// DefaultDaysInMonth is returned when no month is selected.
	DefaultDaysInMonth = 31
)

// -----------------------------------------------------------------------------
// Completeness Indicator
// -----------------------------------------------------------------------------

const (
	IndicatorDefaultRadius     = 27.0
	IndicatorDefaultDiameter   = 62.0
	IndicatorDefaultSnakeWidth = 8.0
	IndicatorMaxValue          = 100

	IndicatorResourceName = "completeness.svg"
	IndicatorLabelFormat  = "%d%%"
	ColorTrackBackground  = "#E6E8EC"
	ColorTrack            = "#3D7EFF"
	ColorLabel            = "#1F2430"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinSettings    = "win_settings_title"
	TKeyWinStaff       = "win_staff_title"
	TKeyWinEditor      = "win_editor_title"
	TKeyMenuRefresh    = "menu_refresh"
	TKeyMenuSettings   = "menu_settings"
	TKeyMenuStaff      = "menu_staff"
	TKeyTrayStatus     = "tray_status"      // Requires Count > 0
	TKeyTrayStatusZero = "tray_status_zero" // Explicit key for 0
	TKeyNotifStart     = "notif_sync_start"
	TKeyNotifSuccess   = "notif_sync_success"
	TKeyNotifError     = "notif_err_sync"
	TKeyModeCardDAV    = "mode_carddav"
	TKeyModeLocal      = "mode_local"
	TKeyLblLanguage    = "lbl_language"
	TKeyHelpLanguage   = "help_language"
	TKeyLblMinutes     = "lbl_minutes_suffix"
	TKeyLblRefresh     = "lbl_refresh_interval"
	TKeyHelpInterval   = "help_interval"
	TKeyLblPort        = "lbl_server_port"
	TKeyHelpPort       = "help_port"
	TKeyLblGeneral     = "lbl_general"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyBtnAdd         = "btn_add"
	TKeyBtnBrowse      = "btn_browse"
	TKeyLblFooter      = "lbl_footer"
	TKeyLblURL         = "lbl_url"
	TKeyHelpURL        = "help_carddav_url"
	TKeyLblUser        = "lbl_user"
	TKeyLblPass        = "lbl_pass"
	TKeyLblSource      = "lbl_source"

	// Profile editor
	TKeyLblName       = "lbl_name"
	TKeyLblEmail      = "lbl_email"
	TKeyLblPhone      = "lbl_phone"
	TKeyLblTitle      = "lbl_title"
	TKeyLblBirthDate  = "lbl_birth_date"
	TKeyHelpBirthDate = "help_birth_date"
	TKeyLblProfile    = "lbl_profile"
	TKeyErrNameReq    = "err_name_required"
	TKeyErrBirthDate  = "err_birth_date_incomplete"
	TKeyNewStaffName  = "new_staff_name"
	TKeyEvtSummary    = "event_summary" // Requires Name

	// Staff table
	TKeyColName         = "col_name"
	TKeyColBirthDate    = "col_birth_date"
	TKeyColCompleteness = "col_completeness"

	// Date selector sub-fields
	TKeyDataSelectorDay   = "data_selector_day"
	TKeyDataSelectorMonth = "data_selector_month"
	TKeyDataSelectorYear  = "data_selector_year"

	// Month option labels (genitive case, as in "5 March").
	TKeyJanuary   = "january_genitive"
	TKeyFebruary  = "february_genitive"
	TKeyMarch     = "march_genitive"
	TKeyApril     = "april_genitive"
	TKeyMay       = "may_genitive"
	TKeyJune      = "june_genitive"
	TKeyJuly      = "july_genitive"
	TKeyAugust    = "august_genitive"
	TKeySeptember = "september_genitive"
	TKeyOctober   = "october_genitive"
	TKeyNovember  = "november_genitive"
	TKeyDecember  = "december_genitive"

	// Validation Errors (UI)
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
)

// MonthKeys lists the month translation keys in calendar order.
var MonthKeys = [12]string{
	TKeyJanuary, TKeyFebruary, TKeyMarch, TKeyApril, TKeyMay, TKeyJune,
	TKeyJuly, TKeyAugust, TKeySeptember, TKeyOctober, TKeyNovember, TKeyDecember,
}

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeWeb     = "web"
	SourceModeLocal   = "local"
	DefaultPort       = "18090"
	DefaultRefreshMin = 60
	DefaultLanguage   = "en"
	DefaultLeapYear   = 2000 // Reference year for birthdays without a year
	UIDSalt           = "go-profile-v1-"
	DisabledInterval  = 0
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Profile//Staff Birthdays//EN"
	ICalCalName = "Staff Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goprofile"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRRule      = "RRULE"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY  = "BDAY"
	VCardFN    = "FN"
	VCardN     = "N"
	VCardUID   = "UID"
	VCardEmail = "EMAIL"
	VCardTel   = "TEL"
	VCardTitle = "TITLE"

	DefaultICalRefresh = 1 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	MinPort = 1
	MaxPort = 65535

	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s@%s"

	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 64 * 1024 * 1024 // 64MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	AddrSeparator       = ":"

	RouteCalendar     = "/birthdays.ics"
	RouteCompleteness = "/completeness.svg"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeSVG             = "image/svg+xml"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty   = "configuration error: local path is empty"
	ErrWebURLEmpty      = "configuration error: web URL is empty"
	ErrFetcherMissing   = "internal error: directory fetcher is not initialized"
	ErrModeUnsupport    = "configuration error: unsupported source mode"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrInvalidURL       = "invalid URL structure"
	ErrProtocol         = "unsupported protocol scheme (http/https only)"
	ErrVCardOpen        = "failed to open vCard source"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrDateParse        = "unable to parse date"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrTrayNotSupported = "system tray not supported on this platform/driver"
	ErrKeyringSave      = "failed to save credentials to keyring"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgNotFound     = "Not Found"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary     = "Birthday: %s"
	FallbackTrayError   = "Go Profile: Sync Error"
	FallbackTrayDefault = "Go Profile (%d birthdays today)"
	FallbackTrayLabel   = "Go Profile"
	FallbackName        = "Unknown"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	TitleStartupError = "Startup Error"
	TitleSyncError    = "Sync Error"

	MsgPortBusy      = "Port %s is busy or unavailable."
	MsgSyncStarted   = "Directory import started"
	MsgSyncFailed    = "Directory import failed. Check logs."
	MsgSyncReq       = "Sync requested"
	MsgWorkerStart   = "Background worker started"
	MsgWorkerStop    = "Worker stopping due to context cancellation"
	MsgUpdateSync    = "Updating sync interval"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid birth date"
	MsgImportDone    = "Directory import successful"
	MsgFeedBuilt     = "Birthday feed generated"
	MsgAppStarting   = "Starting application"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgRoutePublish  = "Route content published"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgPassFail      = "Password retrieval failed (might be empty)"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgDateChanged   = "Date selector value changed"
	MsgYearRejected  = "Year input rejected"
	MsgProfileSaved  = "Profile saved"
	MsgDraftCreated  = "Draft profile created"
	MsgOpenStaff     = "Opening staff window"
	MsgOpenEditor    = "Opening profile editor"
	MsgOpenSettings  = "Opening settings window"
	MsgStaffSorted   = "Staff list sorted"
	MsgSavingPrefs   = "Saving preferences"

	PlaceholderURL = "https://..."
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyInterval  = "interval"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyUser      = "user"
	LogKeyTotal     = "total_cards"
	LogKeyImported  = "staff_imported"
	LogKeyEvents    = "events"
	LogKeyToday     = "birthdays_today"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyRoute     = "route"
	LogKeyManual    = "manual"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeySortCol   = "sort_column"
	LogKeySortAsc   = "sort_asc"
	LogKeyCount     = "count"
	LogKeyUID       = "uid"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompUISet    = "ui_settings"
	CompUIEditor = "ui_editor"
	CompDateSel  = "date_selector"
	CompEngine   = "engine"
	CompServer   = "server"
	CompFetcher  = "fetcher"
	CompWorker   = "worker"
	CompMain     = "main"
	CompI18n     = "i18n"
)
