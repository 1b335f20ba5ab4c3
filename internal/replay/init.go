package replay

import (
	"github.com/ATenderholt/rainbow-mailer/internal/logging"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func init() {
	logger = logging.NewLogger().Named("replay")
}
