package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			registryOpt := WithPrometheusRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with default options on a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics helpers", t, func() {
		Convey("When recording event metrics", func() {
			Convey("Then processed, duplicate, and dropped counters accept calls", func() {
				So(func() {
					RecordEventProcessed()
					RecordEventDuplicate()
					RecordEventDropped()
				}, ShouldNotPanic)
			})

			Convey("And impact observations accept values", func() {
				So(func() {
					RecordEventImpact(3.0)
					RecordEventImpact(12.0)
					RecordEventImpact(-7.2)
				}, ShouldNotPanic)
			})
		})

		Convey("When updating momentum gauges", func() {
			Convey("Then per-team values and levels accept updates", func() {
				So(func() {
					UpdateMomentum("home", 63.8)
					UpdateMomentum("away", 42.8)
					UpdateMomentumLevel("home", 3)
					UpdateMomentumLevel("away", 2)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording effect and composure metrics", func() {
			So(func() {
				UpdateActiveEffects(3)
				RecordEffectsSpawned(3)
				RecordEffectsSpawned(0)
				RecordComposureActivation()
				RecordComposureRejected()
			}, ShouldNotPanic)
		})

		Convey("When updating crowd gauges", func() {
			So(func() {
				UpdateCrowdNoise(88.5)
				UpdateCrowdEnthusiasm(0.73)
			}, ShouldNotPanic)
		})

		Convey("When recording feed metrics", func() {
			So(func() {
				UpdateFeedSize(10)
				UpdateFeedCapacity(1024)
				UpdateFeedUtilization(0.01)
				RecordFeedPublish()
				RecordFeedConsume()
				RecordFeedPublishError()
			}, ShouldNotPanic)
		})

		Convey("When recording loop metrics", func() {
			So(func() {
				RecordTick()
				RecordTickLatency(0.8)
				RecordErrorByComponent("loop", "process_event")
			}, ShouldNotPanic)
		})

		Convey("When updating system metrics", func() {
			So(func() {
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(12)
			}, ShouldNotPanic)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the global registry", t, func() {
		registry := GetRegistry()

		Convey("Then it exists and gathers without error", func() {
			So(registry, ShouldNotBeNil)

			families, err := registry.Gather()
			So(err, ShouldBeNil)
			So(families, ShouldNotBeNil)
		})
	})
}
