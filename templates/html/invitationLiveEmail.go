package html

import (
	"fmt"
	"html"
)

// RenderInvitationLiveEmail builds the "your invitation is live" email body.
// All caller supplied values are escaped before interpolation.
func RenderInvitationLiveEmail(brideName, groomName, publicURL string) string {
	couple := html.EscapeString(brideName) + " & " + html.EscapeString(groomName)
	link := html.EscapeString(publicURL)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="margin:0;padding:0;background:#faf7f2;font-family:Georgia,serif;color:#3c3228;">
    <table role="presentation" width="100%%" cellpadding="0" cellspacing="0">
      <tr>
        <td align="center" style="padding:40px 16px;">
          <table role="presentation" width="560" cellpadding="0" cellspacing="0" style="background:#ffffff;border:1px solid #e7dcc8;border-radius:8px;">
            <tr>
              <td style="padding:40px 48px;text-align:center;">
                <p style="letter-spacing:3px;text-transform:uppercase;font-size:12px;color:#b39554;margin:0;">vowlink</p>
                <h1 style="font-size:26px;font-weight:normal;margin:24px 0 8px;">Your invitation is live</h1>
                <p style="font-size:16px;line-height:1.6;margin:0 0 24px;">The wedding page for %s is now published and ready to share.</p>
                <a href="%s" style="display:inline-block;background:#b39554;color:#ffffff;text-decoration:none;padding:12px 32px;border-radius:4px;font-size:15px;">View your invitation</a>
                <p style="font-size:13px;color:#8a7d6c;margin:32px 0 0;">Or share this link directly:<br/><a href="%s" style="color:#b39554;">%s</a></p>
              </td>
            </tr>
          </table>
          <p style="font-size:12px;color:#a89c8a;margin-top:24px;">You are receiving this because an invitation was created from your account.</p>
        </td>
      </tr>
    </table>
  </body>
</html>`, couple, link, link, link)
}
