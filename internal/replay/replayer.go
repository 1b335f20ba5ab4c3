package replay

import (
	"context"
	"encoding/base64"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

type InvokeAPI interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

type Replayer struct {
	client InvokeAPI
}

func NewReplayer(client InvokeAPI) *Replayer {
	return &Replayer{
		client: client,
	}
}

// Replay invokes the function synchronously with payload and asks for the tail
// of its log.
func (r *Replayer) Replay(ctx context.Context, function string, payload []byte) (*lambda.InvokeOutput, error) {
	logger.Infof("Invoking %s with %d byte payload", function, len(payload))

	output, err := r.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(function),
		InvocationType: types.InvocationTypeRequestResponse,
		LogType:        types.LogTypeTail,
		Payload:        payload,
	})
	if err != nil {
		err := InvokeError{function: function, base: err}
		logger.Error(err)
		return nil, err
	}

	if output.FunctionError != nil {
		err := FunctionError{
			Function: function,
			Kind:     aws.ToString(output.FunctionError),
			Payload:  string(output.Payload),
		}
		logger.Error(err)
		return output, err
	}

	logger.Infof("Function %s returned status %d", function, output.StatusCode)
	return output, nil
}

// Tail decodes the base64 log excerpt returned with LogTypeTail.
func Tail(output *lambda.InvokeOutput) string {
	if output == nil || output.LogResult == nil {
		return ""
	}

	decoded, err := base64.StdEncoding.DecodeString(*output.LogResult)
	if err != nil {
		logger.Warnf("Unable to decode log result: %v", err)
		return ""
	}

	return string(decoded)
}
