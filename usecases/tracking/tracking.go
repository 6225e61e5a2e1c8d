package tracking

import (
	"context"

	"github.com/segmentio/analytics-go/v3"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/utils"
)

// TrackEvent sends an analytics event for the admin in context. It is a no-op when
// no segment client was configured or the request is anonymous.
func TrackEvent(ctx context.Context, event models.AnalyticsEvent, properties map[string]interface{}) {
	client, found := utils.SegmentClientFromContext(ctx)
	if !found {
		return
	}

	creds, ok := utils.CredentialsFromCtx(ctx)
	if !ok {
		return
	}

	trackEventWithClient(ctx, client, creds, event, properties)
}

func trackEventWithClient(
	ctx context.Context,
	client analytics.Client,
	creds models.Credentials,
	event models.AnalyticsEvent,
	properties map[string]interface{},
) {
	props := analytics.NewProperties()
	for key, value := range properties {
		props.Set(key, value)
	}

	err := client.Enqueue(analytics.Track{
		Event:      string(event),
		UserId:     string(creds.UserId),
		Properties: props,
	})
	if err != nil {
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "error while enqueuing analytics event: "+err.Error())
	}
}
