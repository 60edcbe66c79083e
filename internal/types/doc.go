/*
Package types defines the wire types shared by the client, the terminal UI and
the mock backend.

Template and Tag mirror the JSON objects served under /api. GenerateRequest
carries both shapes of the /generate_response body: an initial draft
(customer email plus an optional template id) and a modification (customer
email, previous response and modification request).

Non-2xx responses surface as *APIError. Its Message is the body's "error"
field; callers pick their own fallback text when it is empty.
*/
package types
