package repository

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"

	"resultados/internal/usecase/interfaces"
)

// classifyIndexError promotes store errors caused by a missing composite
// index to *interfaces.MissingIndexError so callers can degrade to a chunked
// scan. DynamoDB reports an unknown GSI as a generic ValidationException, so
// classification has to look at code and message keywords. Everything else
// propagates unchanged.
func classifyIndexError(index string, err error) error {
	var ae smithy.APIError
	if !errors.As(err, &ae) {
		return err
	}
	code := ae.ErrorCode()
	msg := strings.ToLower(ae.ErrorMessage())
	if code == "ValidationException" || code == "FailedPreconditionException" || code == "ResourceNotFoundException" {
		if strings.Contains(msg, "index") || strings.Contains(msg, "precondition") {
			return &interfaces.MissingIndexError{Index: index, Err: err}
		}
	}
	return err
}
