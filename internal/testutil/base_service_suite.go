package testutil

import (
	"context"
	"time"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/auth"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/cache"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/config"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/agent"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/builder"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/file"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/master"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/domain/project"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/s3"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	MasterRepo  master.Repository
	BuilderRepo builder.Repository
	AgentRepo   agent.Repository
	ProjectRepo project.Repository
	FileRepo    file.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	s3     *MockS3Service
	cache  cache.Cache
	auth   auth.Provider
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}

	s.auth = auth.NewProvider(cfg)
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		MasterRepo:  NewInMemoryMasterStore(),
		BuilderRepo: NewInMemoryBuilderStore(),
		AgentRepo:   NewInMemoryAgentStore(),
		ProjectRepo: NewInMemoryProjectStore(),
		FileRepo:    NewInMemoryFileStore(),
	}
	s.s3 = NewMockS3Service()
	s.cache = cache.NewInMemoryCache(s.config)
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.MasterRepo.(*InMemoryMasterStore).Clear()
	s.stores.BuilderRepo.(*InMemoryBuilderStore).Clear()
	s.stores.AgentRepo.(*InMemoryAgentStore).Clear()
	s.stores.ProjectRepo.(*InMemoryProjectStore).Clear()
	s.stores.ProjectRepo.(*InMemoryProjectStore).ClearChildren()
	s.stores.FileRepo.(*InMemoryFileStore).Clear()
	s.s3.Clear()
	s.cache.Flush(s.ctx)
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetS3 returns the in-memory object store
func (s *BaseServiceTestSuite) GetS3() s3.Service {
	return s.s3
}

// GetMockS3 returns the in-memory object store with its inspection helpers
func (s *BaseServiceTestSuite) GetMockS3() *MockS3Service {
	return s.s3
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetAuth returns the test auth provider
func (s *BaseServiceTestSuite) GetAuth() auth.Provider {
	return s.auth
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
