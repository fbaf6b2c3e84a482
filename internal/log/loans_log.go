package log

import (
	"github.com/project/lending/pkg/logger"
	"go.uber.org/zap"
)

func InfoTakeBook(l *zap.Logger, msg string, traceID string, userID, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("user_id", userID),
		zap.Int64("book_id", bookID),
		zap.String("action", TakeBook))
}

func ErrorTakeBook(l *zap.Logger, err error, msg string, traceID string, userID, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("user_id", userID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", TakeBook))
}

func InfoReturnBook(l *zap.Logger, msg string, traceID string, userID, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("user_id", userID),
		zap.Int64("book_id", bookID),
		zap.String("action", ReturnBook))
}

func ErrorReturnBook(l *zap.Logger, err error, msg string, traceID string, userID, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("user_id", userID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", ReturnBook))
}

func InfoRegisterUser(l *zap.Logger, msg string, traceID, email string, id ...int64) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("user_email", email),
			zap.String("action", RegisterUser))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("user_email", email),
		zap.Int64("user_id", id[0]),
		zap.String("action", RegisterUser))
}

func ErrorRegisterUser(l *zap.Logger, err error, msg string, traceID, email string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("user_email", email),
		zap.Error(err),
		zap.String("action", RegisterUser))
}
