package payu

import (
	"html/template"
	"io"
)

// Production and sandbox form-post endpoints.
const (
	PaymentURL     = "https://secure.payu.in/_payment"
	TestPaymentURL = "https://test.payu.in/_payment"
)

// FormFieldOrder is the order hidden inputs appear in the checkout form.
// The hash must travel alongside the signed fields; values pass through the
// form serializer verbatim, never URL-encoded by hand.
var FormFieldOrder = []string{
	"key", "txnid", "amount", "productinfo", "firstname", "email",
	"phone", "surl", "furl", "service_provider", "si", "udf1", "hash",
}

// Directive is what the initiation endpoint hands back: the gateway URL to
// post to and the complete signed field set.
type Directive struct {
	Action string            `json:"action"`
	Fields map[string]string `json:"fields"`
}

var checkoutPage = template.Must(template.New("checkout").Parse(`<!DOCTYPE html>
<html>
<head><title>Redirecting to payment…</title></head>
<body onload="document.forms[0].submit()">
<p>Redirecting you to the payment gateway…</p>
<form method="POST" action="{{.Action}}">
{{- range .Inputs}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

type formInput struct {
	Name  string
	Value string
}

// RenderCheckoutForm writes an auto-submitting HTML form for the directive.
// Submitting it is a full-page navigation to the gateway; control does not
// return to the storefront until the gateway redirects back.
func RenderCheckoutForm(w io.Writer, d Directive) error {
	inputs := make([]formInput, 0, len(d.Fields))
	for _, name := range FormFieldOrder {
		if v, ok := d.Fields[name]; ok {
			inputs = append(inputs, formInput{Name: name, Value: v})
		}
	}
	return checkoutPage.Execute(w, struct {
		Action string
		Inputs []formInput
	}{Action: d.Action, Inputs: inputs})
}
