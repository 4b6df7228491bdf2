package logger

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/Meesho/BharatMLStack/model-mux/pkg/metric"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"
)

var (
	once        sync.Once
	initialized = false
	signalChan  = make(chan os.Signal, 1)
)

// Init initializes the logger by fetching the log level and app name from
// the viper configuration.
func Init() {
	appName := viper.GetString("APP_NAME")
	logLevel := viper.GetString("APP_LOG_LEVEL")

	if len(appName) == 0 {
		panic("APP_NAME is not set!")
	}
	if len(logLevel) == 0 {
		panic("APP_LOG_LEVEL is not set!")
	}
	InitLogger(appName, logLevel)
}

// InitLogger initializes the logger with the given app name and log level.
// Use this directly when config is not sourced from viper.
func InitLogger(appName, logLevel string) {
	if len(appName) == 0 {
		panic("Application name is not set!")
	}
	if len(logLevel) == 0 {
		log.Warn().Msg("Log level not set, defaulting to WARN")
		logLevel = "WARN"
	}
	initLogger(appName, logLevel)
}

func initLogger(appName, logLevel string) {
	if initialized {
		log.Debug().Msg("Logger already initialized!")
		return
	}
	once.Do(func() {
		setLogLevel(logLevel)

		rbSize := -1
		drainingInterval := 5 * time.Millisecond
		if viper.IsSet("LOG_RB_SIZE") {
			rbSize = viper.GetInt("LOG_RB_SIZE")
			drainingInterval = viper.GetDuration("LOG_RB_DRAINING_INTERVAL")
		}

		var w io.Writer = os.Stdout
		if rbSize > 0 {
			// Drop-on-overflow ring buffer keeps logging off the serving
			// hot path under bursty load.
			var dropWarnOnce sync.Once
			dw := diode.NewWriter(os.Stdout, rbSize, drainingInterval, func(missed int) {
				metric.Count("log_rb_dropped", int64(missed), []string{})
				dropWarnOnce.Do(func() {
					fmt.Fprintf(os.Stderr, "Error from Logger: dropping logs due to buffer overflow\n")
				})
			})
			w = dw
			signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
			go func() {
				<-signalChan
				fmt.Fprintf(os.Stdout, "Received signal, closing logger\n")
				_ = dw.Close()
			}()
		}

		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:           w,
			NoColor:       true,
			TimeFormat:    "2006-01-02 15:04:05.000",
			FormatLevel:   func(i interface{}) string { return strings.ToUpper(fmt.Sprintf("- [%-5s] -", i)) },
			FormatCaller:  func(i interface{}) string { return fmt.Sprintf("%s", i) },
			FormatMessage: func(i interface{}) string { return fmt.Sprintf("%s", i) },
			FieldsExclude: []string{"traceInfo"},
			PartsOrder: []string{
				zerolog.TimestampFieldName,
				zerolog.LevelFieldName,
				zerolog.CallerFieldName,
				"traceInfo",
				zerolog.MessageFieldName,
			},
		}).With().Caller().Logger()

		// [file_name::line_number] since the method name is not available
		zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
			parts := strings.Split(file, "/")
			return fmt.Sprintf("[%s::%d]", parts[len(parts)-1], line)
		}

		log.Logger = log.Logger.Hook(zerolog.Hook(TraceHook{}))

		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			return fmt.Sprintf("%s\n%s", err, debug.Stack())
		}

		initialized = true
		log.Info().Str("app", appName).Msg("Logger initialized!")
	})
}

func setLogLevel(logLevel string) {
	switch logLevel {
	case "DEBUG":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "INFO":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "WARN":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "ERROR":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "FATAL":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "PANIC":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "DISABLED":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		log.Panic().Msgf("Incorrect log level - %s", logLevel)
	}
}

// TraceHook stamps each log line with the active otel trace/span ids so
// logs can be joined with traces.
type TraceHook struct{}

func (h TraceHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	spanContext := trace.SpanFromContext(e.GetCtx()).SpanContext()
	traceId := ""
	spanId := ""
	if spanContext.HasTraceID() {
		traceId = spanContext.TraceID().String()
	}
	if spanContext.HasSpanID() {
		spanId = spanContext.SpanID().String()
	}
	e.Str("traceInfo", fmt.Sprintf("(%s,%s)", traceId, spanId))
}
