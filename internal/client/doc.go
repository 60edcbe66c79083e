/*
Package client is the typed REST client for the email assistant backend.

# Endpoints

	POST   /generate_response      GenerateResponse
	GET    /api/templates          ListTemplates (search, tag)
	GET    /api/templates/{id}     GetTemplate
	POST   /api/templates          CreateTemplate
	PUT    /api/templates/{id}     UpdateTemplate
	DELETE /api/templates/{id}     DeleteTemplate
	GET    /api/tags               ListTags
	POST   /login                  Login (form post, session cookie)

# Error Handling

Non-2xx responses are returned as *types.APIError carrying the JSON "error"
field when the body has one. A redirect to the login page (or a 401) is
reported as ErrUnauthorized. Transport failures are wrapped with the method
and path. Nothing is retried.

# Example Usage

	c, err := client.New(client.Options{BaseURL: "http://localhost:5000"})
	if err != nil {
		return err
	}
	if err := c.Login(ctx, "admin", password); err != nil {
		return err
	}
	draft, err := c.GenerateResponse(ctx, types.GenerateRequest{CustomerEmail: email})
*/
package client
