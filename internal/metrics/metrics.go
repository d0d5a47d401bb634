package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	ChatRequests    prometheus.Counter
	ChatFailures    prometheus.Counter
	DocumentUploads prometheus.Counter
	UploadFailures  prometheus.Counter
	SpeechCaptures  prometheus.Counter
	CaptureFailures prometheus.Counter
	ConfigRefreshes prometheus.Counter
}

var (
	once   sync.Once
	global *Metrics
)

func Global() *Metrics {
	once.Do(func() {
		global = &Metrics{
			ChatRequests: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "asistente",
				Name:      "chat_requests_total",
				Help:      "Total chat turns sent to the remote assistant",
			}),
			ChatFailures: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "asistente",
				Name:      "chat_failures_total",
				Help:      "Total chat turns that failed",
			}),
			DocumentUploads: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "asistente",
				Name:      "document_uploads_total",
				Help:      "Total documents submitted for retrieval indexing",
			}),
			UploadFailures: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "asistente",
				Name:      "document_upload_failures_total",
				Help:      "Total document uploads that failed",
			}),
			SpeechCaptures: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "asistente",
				Name:      "speech_captures_total",
				Help:      "Total voice captures started",
			}),
			CaptureFailures: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "asistente",
				Name:      "speech_capture_failures_total",
				Help:      "Total voice captures that ended in a recognition error",
			}),
			ConfigRefreshes: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "asistente",
				Name:      "config_refreshes_total",
				Help:      "Total configuration snapshots fetched from the assistant",
			}),
		}
		prometheus.MustRegister(
			global.ChatRequests,
			global.ChatFailures,
			global.DocumentUploads,
			global.UploadFailures,
			global.SpeechCaptures,
			global.CaptureFailures,
			global.ConfigRefreshes,
		)
	})
	return global
}
