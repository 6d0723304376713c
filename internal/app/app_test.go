package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/onewin/internal/config"
	"github.com/GlebRadaev/onewin/internal/dto"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func testConfig() *config.Config {
	return &config.Config{
		Address:        "127.0.0.1:0",
		StoreDriver:    config.DriverMemory,
		JWTSecret:      "secret",
		TokenTTL:       time.Hour,
		AwardsInterval: time.Hour,
		Economy: config.Economy{
			StartingBalance:    5000,
			BonusMin:           1000,
			BonusMax:           3000,
			BonusVIPMultiplier: 2,
			ClanCreationCost:   50000,
		},
	}
}

func (s *ApplicationSuite) TestStartServesAPI() {
	ctx, cancel := context.WithCancel(context.Background())

	s.Require().NoError(s.app.start(ctx, testConfig()))
	s.True(s.app.ready)

	base := "http://" + s.app.addr.String()

	resp, err := http.Get(base + "/api/statuses")
	s.Require().NoError(err)
	var statuses dto.StatusesResponseDTO
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&statuses))
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.NotEmpty(statuses.Statuses)

	body := `{"nickname":"alice","email":"alice@example.com","password":"password123"}`
	resp, err = http.Post(base+"/api/register", "application/json", strings.NewReader(body))
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	token := resp.Header.Get("Authorization")
	s.True(strings.HasPrefix(token, "Bearer "))

	req, err := http.NewRequest("POST", base+"/api/bonus", nil)
	s.Require().NoError(err)
	req.Header.Set("Authorization", token)
	resp, err = http.DefaultClient.Do(req)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, err = http.DefaultClient.Do(req.Clone(context.Background()))
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusTooManyRequests, resp.StatusCode)

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestStartUnknownDriver() {
	cfg := testConfig()
	cfg.StoreDriver = "etcd"

	err := s.app.start(context.Background(), cfg)
	s.Require().Error(err)
	s.Contains(err.Error(), "can't open snapshot store")
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
