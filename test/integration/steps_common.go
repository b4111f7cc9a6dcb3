package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	authToken    string

	// passwords by email, so login steps can reuse registration credentials
	passwords map[string]string
	// ids of articles created in this scenario, by title
	articleIDs map[string]uint
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:         tc,
		passwords:  make(map[string]string),
		articleIDs: make(map[string]uint),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		s.response = nil
		s.responseBody = nil
		s.authToken = ""
		s.passwords = make(map[string]string)
		s.articleIDs = make(map[string]uint)
		return ctx, s.tc.ResetData()
	})

	// Background steps
	sc.Step(`^the server is running$`, s.theServerIsRunning)
	sc.Step(`^an admin account "([^"]*)" with password "([^"]*)" exists$`, s.anAdminAccountExists)
	sc.Step(`^a client account "([^"]*)" with password "([^"]*)" exists$`, s.aClientAccountExists)
	sc.Step(`^I am logged in as "([^"]*)"$`, s.iAmLoggedInAs)

	// Authentication steps
	sc.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, s.iLogInWithPassword)
	sc.Step(`^I receive a session token$`, s.iReceiveASessionToken)

	// Request steps
	sc.Step(`^I request "([^"]*)" without a token$`, s.iRequestWithoutToken)
	sc.Step(`^I request "([^"]*)" with an invalid token$`, s.iRequestWithInvalidToken)
	sc.Step(`^I request "([^"]*)"$`, s.iRequest)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)

	// Article and tag steps
	sc.Step(`^I create an article "([^"]*)" tagged "([^"]*)"$`, s.iCreateAnArticleTagged)
	sc.Step(`^the article should carry tags "([^"]*)"$`, s.theArticleShouldCarryTags)
	sc.Step(`^the tag list should contain "([^"]*)" exactly once$`, s.theTagListShouldContainOnce)
	sc.Step(`^I retag the article "([^"]*)" with "([^"]*)"$`, s.iRetagTheArticleWith)

	// Contact form steps
	sc.Step(`^I submit the contact form as "([^"]*)" saying "([^"]*)"$`, s.iSubmitTheContactForm)
}

func (s *StepsContext) theServerIsRunning() error {
	resp, err := s.tc.HTTPClient.Get(s.tc.ServerURL + "/status")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status endpoint returned %d", resp.StatusCode)
	}
	return nil
}

func (s *StepsContext) register(path, email, password string) error {
	s.passwords[email] = password
	return s.doJSON("POST", path, map[string]string{
		"email":    email,
		"password": password,
	}, "")
}

func (s *StepsContext) anAdminAccountExists(email, password string) error {
	if err := s.register("/auth/register/admin", email, password); err != nil {
		return err
	}
	return s.expectStatus(http.StatusCreated)
}

func (s *StepsContext) aClientAccountExists(email, password string) error {
	if err := s.register("/auth/register", email, password); err != nil {
		return err
	}
	return s.expectStatus(http.StatusCreated)
}

func (s *StepsContext) iAmLoggedInAs(email string) error {
	password, ok := s.passwords[email]
	if !ok {
		return fmt.Errorf("no account registered for %s in this scenario", email)
	}
	if err := s.iLogInWithPassword(email, password); err != nil {
		return err
	}
	return s.iReceiveASessionToken()
}

func (s *StepsContext) iLogInWithPassword(email, password string) error {
	return s.doJSON("POST", "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
}

func (s *StepsContext) iReceiveASessionToken() error {
	if err := s.expectStatus(http.StatusOK); err != nil {
		return err
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(s.responseBody, &result); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}
	if result.Token == "" {
		return fmt.Errorf("login response carried no token: %s", s.responseBody)
	}
	s.authToken = result.Token
	return nil
}

func (s *StepsContext) iRequest(path string) error {
	return s.doJSON("GET", path, nil, s.authToken)
}

func (s *StepsContext) iRequestWithoutToken(path string) error {
	return s.doJSON("GET", path, nil, "")
}

func (s *StepsContext) iRequestWithInvalidToken(path string) error {
	return s.doJSON("GET", path, nil, "eyJhbGciOiJIUzI1NiJ9.invalid.signature")
}

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	return s.expectStatus(status)
}

func (s *StepsContext) iCreateAnArticleTagged(title, tagList string) error {
	err := s.doJSON("POST", "/api/articles", map[string]interface{}{
		"title":     title,
		"content":   "body of " + title,
		"published": true,
		"tags":      splitList(tagList),
	}, s.authToken)
	if err != nil {
		return err
	}
	if err := s.expectStatus(http.StatusCreated); err != nil {
		return err
	}

	var article struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(s.responseBody, &article); err != nil {
		return fmt.Errorf("failed to parse article response: %w", err)
	}
	s.articleIDs[title] = article.ID
	return nil
}

func (s *StepsContext) iRetagTheArticleWith(title, tagList string) error {
	id, ok := s.articleIDs[title]
	if !ok {
		return fmt.Errorf("no article %q created in this scenario", title)
	}
	return s.doJSON("PUT", fmt.Sprintf("/api/articles/%d", id), map[string]interface{}{
		"title":     title,
		"content":   "body of " + title,
		"published": true,
		"tags":      splitList(tagList),
	}, s.authToken)
}

func (s *StepsContext) theArticleShouldCarryTags(tagList string) error {
	var article struct {
		Tags []struct {
			Name string `json:"name"`
		} `json:"tags"`
	}
	if err := json.Unmarshal(s.responseBody, &article); err != nil {
		return fmt.Errorf("failed to parse article response: %w", err)
	}

	got := make(map[string]bool, len(article.Tags))
	for _, tag := range article.Tags {
		got[tag.Name] = true
	}
	for _, want := range splitList(tagList) {
		if !got[want] {
			return fmt.Errorf("article tags %v missing %q", article.Tags, want)
		}
	}
	if len(article.Tags) != len(splitList(tagList)) {
		return fmt.Errorf("expected %d tags, got %v", len(splitList(tagList)), article.Tags)
	}
	return nil
}

func (s *StepsContext) theTagListShouldContainOnce(name string) error {
	if err := s.doJSON("GET", "/api/tags", nil, s.authToken); err != nil {
		return err
	}
	if err := s.expectStatus(http.StatusOK); err != nil {
		return err
	}

	var tags []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(s.responseBody, &tags); err != nil {
		return fmt.Errorf("failed to parse tag list: %w", err)
	}

	count := 0
	for _, tag := range tags {
		if tag.Name == name {
			count++
		}
	}
	if count != 1 {
		return fmt.Errorf("expected tag %q exactly once, found %d occurrences", name, count)
	}
	return nil
}

func (s *StepsContext) iSubmitTheContactForm(email, message string) error {
	return s.doJSON("POST", "/contactForm", map[string]string{
		"name":    "Visitor",
		"email":   email,
		"message": message,
	}, "")
}

// doJSON issues a request against the test server and captures the response.
func (s *StepsContext) doJSON(method, path string, body interface{}, token string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func (s *StepsContext) expectStatus(status int) error {
	if s.response == nil {
		return fmt.Errorf("no request has been made yet")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func splitList(list string) []string {
	parts := strings.Split(list, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
