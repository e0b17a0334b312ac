package analytics

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFileDataCollector appends one JSON line per action outcome to a file.
type LogFileDataCollector struct {
	fileName string
	logger   *zap.Logger
}

var _ RuleDataCollector = new(LogFileDataCollector)

func NewLogFileDataCollector(fileName string) (*LogFileDataCollector, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.StacktraceKey = ""
	fileEncoder := zapcore.NewJSONEncoder(encoderConfig)
	logFile, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(fileEncoder, zapcore.AddSync(logFile), zapcore.InfoLevel)
	return &LogFileDataCollector{
		fileName: fileName,
		logger:   zap.New(core),
	}, nil
}

func (lc *LogFileDataCollector) RecordActionSuccess(ruleId string, ruleName string, actionType string, message string) {
	lc.logger.Info("success", zap.String("ruleId", ruleId), zap.String("rule", ruleName), zap.String("action", actionType), zap.String("message", message))
}

func (lc *LogFileDataCollector) RecordActionFailure(ruleId string, ruleName string, actionType string, reason string) {
	lc.logger.Info("failure", zap.String("ruleId", ruleId), zap.String("rule", ruleName), zap.String("action", actionType), zap.String("reason", reason))
}
