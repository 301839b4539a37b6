package backend

import "context"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. Unlike every other call it
// runs unauthenticated.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out loginResponse
	err := c.send(ctx, "POST", "login/", loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &APIError{Message: "login response contained no token"}
	}
	return out.Token, nil
}

// DashboardStats fetches the aggregate counters for the landing page.
func (c *Client) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	err := c.get(ctx, "dashboard/", nil, &out)
	return out, err
}
