package models

type AnalyticsEvent string

const (
	AnalyticsBlogPostCreated AnalyticsEvent = "Created Blog Post"
	AnalyticsBlogPostUpdated AnalyticsEvent = "Updated Blog Post"
	AnalyticsBlogPostDeleted AnalyticsEvent = "Deleted Blog Post"
	AnalyticsAdCreated       AnalyticsEvent = "Created Advertisement"
	AnalyticsAdUpdated       AnalyticsEvent = "Updated Advertisement"
	AnalyticsAdDeleted       AnalyticsEvent = "Deleted Advertisement"
	AnalyticsImageUploaded   AnalyticsEvent = "Uploaded Image"
	AnalyticsAdminSignedUp   AnalyticsEvent = "Admin Signed Up"
)
