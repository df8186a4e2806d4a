package loopconfig_test

import (
	"os"
	"time"

	"github.com/playloop/action/internal/loopconfig"
	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("New", func() {
	vars := []string{"TICK_MS", "LOG_LEVEL", "LOG_FORMAT", "SCRIPT_PATH"}

	BeforeEach(func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	})

	AfterEach(func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	})

	It("falls back to defaults", func() {
		config, err := loopconfig.New()
		Expect(err).NotTo(HaveOccurred())
		Expect(config.TickInterval).To(Equal(16 * time.Millisecond))
		Expect(config.LogLevel).To(Equal(logrus.InfoLevel))
		Expect(config.LogFormat).To(Equal("text"))
		Expect(config.ScriptPath).To(BeEmpty())
	})

	It("reads overrides from the environment", func() {
		os.Setenv("TICK_MS", "50")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("LOG_FORMAT", "json")
		os.Setenv("SCRIPT_PATH", "scene.yaml")

		config, err := loopconfig.New()
		Expect(err).NotTo(HaveOccurred())
		Expect(config.TickInterval).To(Equal(50 * time.Millisecond))
		Expect(config.LogLevel).To(Equal(logrus.DebugLevel))
		Expect(config.LogFormat).To(Equal("json"))
		Expect(config.ScriptPath).To(Equal("scene.yaml"))
	})

	It("rejects a non-positive tick", func() {
		os.Setenv("TICK_MS", "0")
		_, err := loopconfig.New()
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unknown log level", func() {
		os.Setenv("LOG_LEVEL", "loud")
		_, err := loopconfig.New()
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unknown log format", func() {
		os.Setenv("LOG_FORMAT", "xml")
		_, err := loopconfig.New()
		Expect(err).To(HaveOccurred())
	})
})
