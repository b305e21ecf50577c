package gatedata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hardgate/scanengine/internal/model"
)

func TestExpectedCountAvoidLoggingSecretsIsAlwaysZero(t *testing.T) {
	files := []model.FileRecord{{Path: "a/UserController.java"}, {Path: "b/OrderService.java"}}
	assert.Equal(t, 0, ExpectedCount(model.GateAvoidLoggingSecrets, files, 500))
}

func TestExpectedCountHonorsFloor(t *testing.T) {
	// no api files present -> 2*0 < 5, floor to 5
	files := []model.FileRecord{{Path: "util/Helper.java"}}
	assert.Equal(t, 5, ExpectedCount(model.GateLogAPICalls, files, 50))
}

func TestExpectedCountScalesWithClassifiedFiles(t *testing.T) {
	files := []model.FileRecord{
		{Path: "api/UserController.java"},
		{Path: "api/OrderController.java"},
		{Path: "api/PaymentRouter.java"},
	}
	// 3 api files -> max(3*3, 5) = 9
	assert.Equal(t, 9, ExpectedCount(model.GateHTTPCodes, files, 100))
}

func TestExpectedCountUIErrorToolsIsAlwaysOne(t *testing.T) {
	assert.Equal(t, 1, ExpectedCount(model.GateUIErrorTools, nil, 0))
}

func TestCountClassifiesByFilenameKeyword(t *testing.T) {
	files := []model.FileRecord{
		{Path: "app/worker.py"},
		{Path: "app/scheduler.py"},
		{Path: "app/models.py"},
	}
	assert.Equal(t, 2, Count(files, "job_files"))
}

func TestCountUnknownClassificationIsZero(t *testing.T) {
	assert.Equal(t, 0, Count([]model.FileRecord{{Path: "x.py"}}, "not_a_real_classification"))
}

func TestExpectedCountCorrelationIDUsesWebFiles(t *testing.T) {
	// 5 web files -> max(5, 3) = 5
	files := []model.FileRecord{
		{Path: "api/UserController.java"},
		{Path: "api/OrderRouter.java"},
		{Path: "api/PaymentEndpoint.java"},
		{Path: "api/AuthMiddleware.java"},
		{Path: "api/RateLimitFilter.java"},
	}
	assert.Equal(t, 5, ExpectedCount(model.GateCorrelationID, files, 100))
}

func TestExpectedCountCorrelationIDFloorsAtThree(t *testing.T) {
	files := []model.FileRecord{{Path: "util/Helper.java"}}
	assert.Equal(t, 3, ExpectedCount(model.GateCorrelationID, files, 50))
}
