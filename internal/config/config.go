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
var UserAgent = "GiftSmart/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "GiftSmart"
	AppID             = "com.github.dmathew.go-giftsmart"
	KeyringService    = "com.github.dmathew.go-giftsmart"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	SettingsFileName  = "settings.yaml"
	DataFileName      = "birthdays.json"
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
	// Used for the birthday data file, settings, and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure data and cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagConfig       = "config"
	FlagImport       = "import"
	FlagECard        = "ecard"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescConfig   = "Path to the settings file (YAML)"
	FlagDescImport   = "Import birthdays from the configured contact source and exit"
	FlagDescECard    = "Compose the e-card and gift ideas for a stored entry id and exit"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
	ECardGiftHeader  = "Gift ideas:"
	FormatGiftIdea   = "  %s (%s)\n"
)

// -----------------------------------------------------------------------------
// Birthday Sections & Scheduling
// -----------------------------------------------------------------------------

const (
	SectionToday     = "Today"
	SectionThisWeek  = "This Week"
	SectionThisMonth = "This Month"
	SectionUpcoming  = "Upcoming"

	// WeekCutoffDays and MonthCutoffDays bound the "This Week" and
	// "This Month" buckets (inclusive upper bounds in days-until).
	WeekCutoffDays  = 7
	MonthCutoffDays = 30

	SectionCount = 4
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeWeb   = "web"
	SourceModeLocal = "local"

	DefaultPort            = "18080"
	DefaultLanguage        = "en"
	DefaultLeapYear        = 2000 // Leap year fallback for dates like --02-29
	DefaultReminderCron    = "0 9 * * *"
	DefaultReminderTrigger = "-P1D"
	DefaultCardStyle       = "Birthday Cake"
)

// SupportedLanguages defines the list of available greeting languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Gift Catalog & Checkout
// -----------------------------------------------------------------------------

const (
	CategoryFood          = "food"
	CategoryRetail        = "retail"
	CategoryExperience    = "experience"
	CategoryEntertainment = "entertainment"

	// OrderServiceFee is the flat fee (USD) added to every simulated order.
	OrderServiceFee = 2.99

	// Simulated upstream latencies. The stub service sleeps these durations
	// (context-aware) before answering, mimicking a remote aggregator.
	CatalogFetchDelay  = 500 * time.Millisecond
	OrderCreationDelay = 2 * time.Second

	// MinRecipientPhoneLen is the minimum digit count accepted for a
	// recipient phone number at the checkout boundary.
	MinRecipientPhoneLen = 10

	FormatPriceRange = "$%d - $%d"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//GiftSmart//Feed//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "giftsmart"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
	VCardTEL  = "TEL"

	DefaultICalRefresh = 1 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts used for the persisted store and vCard BDAY parsing
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// UID Generation
	FormatUID = "%s-%d@%s"

	// File Suffixes (atomic store writes)
	SuffixTmp    = ".tmp"
	SuffixBackup = ".bak"
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
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteFeed           = "/birthdays.ics"
	AddrSeparator       = ":"
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
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyGreetHeader   = "greet_header"   // Requires Name
	TKeyGreetWish     = "greet_wish"     // Body line between style emojis
	TKeyGreetClosing  = "greet_closing"  // Final line
	TKeyNotifTitle    = "notif_title"    // Daily reminder title
	TKeyNotifBody     = "notif_body"     // Requires Names (joined list)
	TKeyEvtSummary    = "event_summary"  // Requires Name
	TKeySectionToday  = "section_today"  // Localized bucket titles
	TKeySectionWeek   = "section_week"
	TKeySectionMonth  = "section_month"
	TKeySectionFuture = "section_future"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty   = "configuration error: local vCard path is empty"
	ErrWebURLEmpty      = "configuration error: web URL is empty"
	ErrFetcherMissing   = "internal error: network fetcher is not initialized"
	ErrModeUnsupport    = "configuration error: unsupported source mode"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrInvalidURL       = "invalid URL structure"
	ErrProtocol         = "unsupported protocol scheme (http/https only)"
	ErrVCardParse       = "failed to parse vCard stream"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrDateParse        = "unable to parse date"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrDataDir          = "could not determine user config dir"
	ErrCreateDir        = "could not create app directory"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrSettingsRead     = "failed to read settings file"
	ErrSettingsParse    = "failed to parse settings file"
	ErrSettingsWrite    = "failed to write settings file"
	ErrStoreEncode      = "failed to encode birthday collection"
	ErrEntryNotFound    = "no birthday entry with that id"
	ErrGiftNotFound     = "no gift option with that id"
	ErrAmountRange      = "amount outside the allowed range for this gift"
	ErrRecipientMissing = "order requires a recipient email or phone number"
	ErrCronSpec         = "invalid reminder cron specification"
	ErrKeyringSet       = "credential storage failed"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackSummary    = "Birthday: %s"
	FallbackName       = "Unknown"
	FallbackNotifTitle = "Today's Birthdays"
	FallbackNotifBody  = "Wish a happy birthday to: %s"
	NameListSeparator  = ", "

	// StubVCalendar is the minimal valid iCalendar object used when the
	// store holds no entries. Clients flag truly empty feeds as invalid.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgImportStarted  = "Contact import started..."
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgImportSuccess  = "Contact import successful"
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgFeedUpdated    = "Feed cache updated"
	MsgFeedPublished  = "Feed published"
	MsgStoreLoaded    = "Birthday store loaded"
	MsgStoreEmpty     = "No persisted birthdays found, starting empty"
	MsgStoreCorrupt   = "Persisted birthdays undecodable, starting empty"
	MsgStoreSaveFail  = "Persist failed, in-memory state retained"
	MsgEntryAdded     = "Birthday entry added"
	MsgEntriesDeleted = "Birthday entries deleted"
	MsgEntryToggled   = "Close friend flag toggled"
	MsgEntryUpdated   = "Birthday entry updated"
	MsgReminderPass   = "Daily reminder pass"
	MsgReminderSkip   = "No birthdays today, skipping notification"
	MsgReminderSent   = "Birthday reminder emitted"
	MsgSchedulerStart = "Reminder scheduler started"
	MsgSchedulerStop  = "Reminder scheduler stopped"
	MsgCatalogFetch   = "Catalog fetch"
	MsgOrderCreated   = "Gift order created"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgPassFail       = "Password retrieval failed (might be empty)"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgBdayToday      = "Birthday found today"
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
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyID        = "id"
	LogKeyDOB       = "date_of_birth"
	LogKeyToday     = "birthdays_today"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDuration  = "duration_ms"
	LogKeyPath      = "path"
	LogKeyCategory  = "category"
	LogKeyAmount    = "amount"
	LogKeyOrderID   = "order_id"
	LogKeyBrand     = "brand"
	LogKeySchedule  = "schedule"
	LogKeyValue     = "value"

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
	CompMain     = "main"
	CompStore    = "store"
	CompServer   = "server"
	CompFeed     = "feed"
	CompContacts = "contacts"
	CompFetcher  = "fetcher"
	CompNotify   = "notify"
	CompGifts    = "gifts"
	CompI18n     = "i18n"
)
