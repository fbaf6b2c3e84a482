package log

import (
	"github.com/project/lending/pkg/logger"
	"go.uber.org/zap"
)

func InfoData(l *zap.Logger, action Action, msg, traceID, kind string, id int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("kind", kind),
		zap.Int64("id", id),
		zap.String("action", action))
}

func ErrorData(l *zap.Logger, err error, action Action, msg, traceID, kind string, id int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("kind", kind),
		zap.Int64("id", id),
		zap.Error(err),
		zap.String("action", action))
}

func InfoLink(l *zap.Logger, action Action, msg, traceID, table string, leftID, rightID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("link", table),
		zap.Int64("left_id", leftID),
		zap.Int64("right_id", rightID),
		zap.String("action", action))
}

func ErrorLink(l *zap.Logger, err error, action Action, msg, traceID, table string, leftID, rightID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("link", table),
		zap.Int64("left_id", leftID),
		zap.Int64("right_id", rightID),
		zap.Error(err),
		zap.String("action", action))
}
