package duplicatecleaner_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/skynet2/moneymate-scraper/pkg/database"
	"github.com/skynet2/moneymate-scraper/pkg/duplicatecleaner"
)

func TestIsDuplicate_KeyIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockRepo(ctrl)
	duplicateCleaner := duplicatecleaner.NewDuplicateCleaner(mockRepo)

	isDuplicate, err := duplicateCleaner.IsDuplicate(context.Background(), "", database.SourceGojek)
	assert.NoError(t, err)
	assert.False(t, isDuplicate)
}

func TestIsDuplicate_RepoReturnsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockRepo(ctrl)
	duplicateCleaner := duplicatecleaner.NewDuplicateCleaner(mockRepo)

	mockRepo.EXPECT().IsDuplicateKeyExists(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, errors.New("repo error"))

	_, err := duplicateCleaner.IsDuplicate(context.Background(), "test-key", database.SourceGojek)
	assert.Error(t, err)
	assert.Equal(t, "repo error", err.Error())
}

func TestIsDuplicate_KeyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockRepo(ctrl)
	duplicateCleaner := duplicatecleaner.NewDuplicateCleaner(mockRepo)

	hashed := duplicateCleaner.HashKey("test-key")
	mockRepo.EXPECT().IsDuplicateKeyExists(gomock.Any(), hashed, database.SourceGrab).
		Return(true, nil)

	isDuplicate, err := duplicateCleaner.IsDuplicate(context.Background(), "test-key", database.SourceGrab)
	assert.NoError(t, err)
	assert.True(t, isDuplicate)
}

func TestAddDuplicateKey_KeyIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockRepo(ctrl)
	duplicateCleaner := duplicatecleaner.NewDuplicateCleaner(mockRepo)

	err := duplicateCleaner.AddDuplicateKey(context.Background(), "", database.SourceGojek)
	assert.NoError(t, err)
}

func TestAddDuplicateKey_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockRepo(ctrl)
	duplicateCleaner := duplicatecleaner.NewDuplicateCleaner(mockRepo)

	mockRepo.EXPECT().AddDuplicateKey(gomock.Any(), gomock.Any(), database.SourceGojek).Return(nil)

	err := duplicateCleaner.AddDuplicateKey(context.Background(), "test-key", database.SourceGojek)
	assert.NoError(t, err)
}
