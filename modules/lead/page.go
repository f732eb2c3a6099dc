package lead

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PageData feeds the landing page.
type PageData struct {
	Title     string
	Heading   string
	Pitch     string
	ActionURL string
}

// DefaultPageData is the stock landing page copy.
func DefaultPageData() PageData {
	return PageData{
		Title:     "Vibe Coding Framework - Build $20K/Month Apps in 14 Days",
		Heading:   "Ready to Build Your App?",
		Pitch:     "Get tips on AI-powered development, marketing strategies, and app monetization.",
		ActionURL: CapturePath,
	}
}

// LandingPage renders the page shell with the signup section.
func LandingPage(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []string{
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1.0">`,
			`<title>`, templ.EscapeString(d.Title), `</title></head><body>`,
		}
		for _, p := range parts {
			if _, err := io.WriteString(w, p); err != nil {
				return err
			}
		}
		if err := SignupSection(d).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// SignupSection renders the email capture form. Without JavaScript the form
// posts directly; with it, signupScript submits in place and shows the result.
func SignupSection(d PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		parts := []string{
			`<section class="section" id="signup"><div class="container">`,
			`<h2>`, templ.EscapeString(d.Heading), `</h2>`,
			`<p class="text-secondary">`, templ.EscapeString(d.Pitch), `</p>`,
			`<form class="signup-form" method="post" action="`, templ.EscapeString(d.ActionURL), `">`,
			`<input type="email" name="email" placeholder="Enter your email" aria-label="Email address" required>`,
			`<button type="submit">Subscribe</button>`,
			`<p class="text-muted small">No spam. Unsubscribe anytime.</p>`,
			`</form><div class="signup-message" role="alert" hidden></div>`,
			`</div></section>`,
			signupScript,
		}
		for _, p := range parts {
			if _, err := io.WriteString(w, p); err != nil {
				return err
			}
		}
		return nil
	})
}

const signupScript = `<script>
(function () {
  var form = document.querySelector(".signup-form");
  var box = document.querySelector(".signup-message");
  if (!form || !box) return;
  var input = form.querySelector("input[name=email]");
  var button = form.querySelector("button");
  function show(kind, text) {
    box.className = "signup-message alert " + (kind === "success" ? "alert-success" : "alert-danger");
    box.textContent = text;
    box.hidden = false;
  }
  form.addEventListener("submit", async function (e) {
    e.preventDefault();
    if (button.disabled || !input.value.trim()) return;
    button.disabled = true;
    input.disabled = true;
    box.hidden = true;
    try {
      var body = new FormData();
      body.append("email", input.value);
      var res = await fetch(form.action, { method: "POST", body: body, signal: AbortSignal.timeout(15000) });
      var data = await res.json();
      if (res.ok) {
        show("success", "Thanks for subscribing! Check your inbox for confirmation.");
        input.value = "";
      } else {
        show("error", data.error || "Something went wrong. Please try again.");
      }
    } catch (err) {
      show("error", "Network error. Please try again.");
    } finally {
      button.disabled = false;
      input.disabled = false;
    }
  });
})();
</script>`
