package analytics

type DataCollectorConfig struct {
	FileName      string
	CollectorType DataCollectorType
}

type DataCollectorType string

const LOG_FILE_DATA_COLLECTOR DataCollectorType = "LOG_FILE_DATA_COLLECTOR"
const NOOP_DATA_COLLECTOR DataCollectorType = "NOOP_DATA_COLLECTOR"

// RuleDataCollector receives the outcome of every dispatched action, one call
// per action, for audit purposes. It is fed by the dispatcher and must never
// influence dispatch results.
type RuleDataCollector interface {
	RecordActionSuccess(ruleId string, ruleName string, actionType string, message string)
	RecordActionFailure(ruleId string, ruleName string, actionType string, reason string)
}

var ruleCollector RuleDataCollector

func InitDataCollector(config DataCollectorConfig) error {
	switch config.CollectorType {
	case LOG_FILE_DATA_COLLECTOR:
		c, err := NewLogFileDataCollector(config.FileName)
		if err != nil {
			return err
		}
		ruleCollector = c
	}
	return nil
}

func RecordActionSuccess(ruleId string, ruleName string, actionType string, message string) {
	if ruleCollector == nil {
		return
	}
	ruleCollector.RecordActionSuccess(ruleId, ruleName, actionType, message)
}

func RecordActionFailure(ruleId string, ruleName string, actionType string, reason string) {
	if ruleCollector == nil {
		return
	}
	ruleCollector.RecordActionFailure(ruleId, ruleName, actionType, reason)
}
