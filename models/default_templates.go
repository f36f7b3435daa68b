package models

import "time"

// DefaultTemplates returns the seed catalog. Placeholders ({{bride_name}},
// {{qr_code}}, ...) are substituted client-side when rendering the public page.
func DefaultTemplates() []Template {
	now := time.Now().UTC()
	return []Template{
		{
			ID:       "classic-elegance",
			Name:     "Classic Elegance",
			Category: "classic",
			HTMLContent: `<div class="invitation classic">
  <div class="ornament top"></div>
  <p class="intro">Together with their families</p>
  <h1 class="names">{{bride_name}} <span class="amp">&amp;</span> {{groom_name}}</h1>
  <p class="request">request the pleasure of your company at their wedding</p>
  <p class="datetime">{{wedding_date}} at {{wedding_time}}</p>
  <p class="venue">{{venue_name}}</p>
  <p class="address">{{venue_address}}</p>
  <div class="qr">{{qr_code}}</div>
  <div class="ornament bottom"></div>
</div>`,
			CSSContent: `.invitation.classic { font-family: 'Cormorant Garamond', serif; background: #fffdf7; color: #3c3228; text-align: center; padding: 64px 48px; border: 1px solid #d8c9a3; }
.invitation.classic .names { font-size: 42px; font-weight: 500; letter-spacing: 2px; margin: 24px 0; }
.invitation.classic .amp { color: #b39554; font-style: italic; }
.invitation.classic .intro, .invitation.classic .request { font-size: 16px; letter-spacing: 3px; text-transform: uppercase; }
.invitation.classic .datetime { font-size: 20px; margin-top: 32px; }
.invitation.classic .ornament { height: 24px; background: url('/assets/flourish-gold.svg') center no-repeat; }
.invitation.classic .qr img { width: 120px; margin-top: 32px; }`,
			CreatedAt: now,
		},
		{
			ID:       "modern-minimalist",
			Name:     "Modern Minimalist",
			Category: "modern",
			HTMLContent: `<div class="invitation modern">
  <h1 class="names">{{bride_name}}<br/>+<br/>{{groom_name}}</h1>
  <div class="rule"></div>
  <p class="datetime">{{wedding_date}} &middot; {{wedding_time}}</p>
  <p class="venue">{{venue_name}}, {{venue_address}}</p>
  <div class="qr">{{qr_code}}</div>
</div>`,
			CSSContent: `.invitation.modern { font-family: 'Inter', sans-serif; background: #ffffff; color: #111111; padding: 80px 56px; text-align: left; }
.invitation.modern .names { font-size: 56px; font-weight: 200; line-height: 1.1; letter-spacing: -1px; }
.invitation.modern .rule { width: 48px; height: 2px; background: #111111; margin: 40px 0; }
.invitation.modern .datetime { font-size: 14px; letter-spacing: 4px; text-transform: uppercase; }
.invitation.modern .qr img { width: 96px; margin-top: 48px; }`,
			CreatedAt: now,
		},
		{
			ID:       "boho-chic",
			Name:     "Boho Chic",
			Category: "bohemian",
			HTMLContent: `<div class="invitation boho">
  <div class="arch">
    <p class="intro">we're getting married</p>
    <h1 class="names">{{bride_name}} &amp; {{groom_name}}</h1>
    <p class="datetime">{{wedding_date}} | {{wedding_time}}</p>
    <p class="venue">{{venue_name}}</p>
    <p class="address">{{venue_address}}</p>
    <div class="qr">{{qr_code}}</div>
  </div>
</div>`,
			CSSContent: `.invitation.boho { font-family: 'Quattrocento', serif; background: #f6ede1; color: #6e5843; padding: 48px; text-align: center; }
.invitation.boho .arch { border: 2px solid #c9a87c; border-radius: 180px 180px 0 0; padding: 72px 40px 48px; }
.invitation.boho .intro { font-style: italic; letter-spacing: 2px; }
.invitation.boho .names { font-size: 38px; color: #9c7a50; margin: 20px 0; }
.invitation.boho .qr img { width: 110px; margin-top: 28px; }`,
			CreatedAt: now,
		},
		{
			ID:       "floral-romance",
			Name:     "Floral Romance",
			Category: "floral",
			HTMLContent: `<div class="invitation floral">
  <div class="corner tl"></div><div class="corner br"></div>
  <p class="intro">With joyful hearts</p>
  <h1 class="names">{{bride_name}} &amp; {{groom_name}}</h1>
  <p class="request">invite you to celebrate their wedding day</p>
  <p class="datetime">{{wedding_date}} at {{wedding_time}}</p>
  <p class="venue">{{venue_name}}</p>
  <p class="address">{{venue_address}}</p>
  <div class="qr">{{qr_code}}</div>
</div>`,
			CSSContent: `.invitation.floral { font-family: 'Playfair Display', serif; background: #fdf4f5; color: #5a3e45; padding: 72px 56px; text-align: center; position: relative; }
.invitation.floral .names { font-size: 40px; color: #a3566b; margin: 24px 0; }
.invitation.floral .corner { position: absolute; width: 140px; height: 140px; background: url('/assets/peony.svg') no-repeat; background-size: contain; }
.invitation.floral .corner.tl { top: 0; left: 0; }
.invitation.floral .corner.br { bottom: 0; right: 0; transform: rotate(180deg); }
.invitation.floral .qr img { width: 120px; margin-top: 32px; }`,
			CreatedAt: now,
		},
	}
}
