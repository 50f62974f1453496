package common

// Names of persisted settings. The credential and scheduler values share one
// key-value settings store; these constants are the single source of the key
// spellings.
const (
	SettingGenerationAPIKey = "geminiApiKey"
	SettingPublishingAPIKey = "bloggerApiKey"
	SettingBlogID           = "blogId"
	SettingSchedulerActive  = "schedulerActive"
	SettingSchedulerNextRun = "schedulerNextRun"
	SettingScheduleEnabled  = "scheduleEnabled"
	SettingScheduledTime    = "scheduledTime"
)
