// Package routes maps URL-like paths to the screens of skyshell and back.
//
// The route table is a closed set of names. Each name has a typed target
// value carrying exactly the parameters its pattern declares, so callers
// switch on a Target instead of passing string-keyed maps around.
package routes

// Name identifies a kind of screen.
type Name string

const (
	NameHome             Name = "Home"
	NameSearch           Name = "Search"
	NameNotifications    Name = "Notifications"
	NameSettings         Name = "Settings"
	NameProfile          Name = "Profile"
	NameProfileFollowers Name = "ProfileFollowers"
	NameProfileFollows   Name = "ProfileFollows"
	NamePostThread       Name = "PostThread"
	NamePostUpvotedBy    Name = "PostUpvotedBy"
	NamePostRepostedBy   Name = "PostRepostedBy"
	NameDebug            Name = "Debug"
	NameLog              Name = "Log"
	NameSupport          Name = "Support"
	NamePrivacyPolicy    Name = "PrivacyPolicy"
	NameNotFound         Name = "NotFound"
)

// Params maps a pattern segment name to its value.
type Params map[string]string

// Clone returns a copy of p. A nil map clones to an empty one.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Target is a resolved route: one of the concrete types in this file.
type Target interface {
	Name() Name
	Params() Params
	target()
}

// Home is the following feed, root of the home section.
type Home struct{}

func (Home) Name() Name     { return NameHome }
func (Home) Params() Params { return Params{} }
func (Home) target()        {}

// Search is the search page, root of the search section.
type Search struct{}

func (Search) Name() Name     { return NameSearch }
func (Search) Params() Params { return Params{} }
func (Search) target()        {}

// Notifications lists activity, root of the notifications section.
type Notifications struct{}

func (Notifications) Name() Name     { return NameNotifications }
func (Notifications) Params() Params { return Params{} }
func (Notifications) target()        {}

// Settings is the settings page.
type Settings struct{}

func (Settings) Name() Name     { return NameSettings }
func (Settings) Params() Params { return Params{} }
func (Settings) target()        {}

// Profile is the profile page of an actor.
type Profile struct{ Handle string }

func (Profile) Name() Name       { return NameProfile }
func (t Profile) Params() Params { return Params{"handle": t.Handle} }
func (Profile) target()          {}

// ProfileFollowers lists the accounts following an actor.
type ProfileFollowers struct{ Handle string }

func (ProfileFollowers) Name() Name       { return NameProfileFollowers }
func (t ProfileFollowers) Params() Params { return Params{"handle": t.Handle} }
func (ProfileFollowers) target()          {}

// ProfileFollows lists the accounts an actor follows.
type ProfileFollows struct{ Handle string }

func (ProfileFollows) Name() Name       { return NameProfileFollows }
func (t ProfileFollows) Params() Params { return Params{"handle": t.Handle} }
func (ProfileFollows) target()          {}

// PostThread is a post and its replies. Rkey is the record key of the post
// inside the author's repository.
type PostThread struct{ Handle, Rkey string }

func (PostThread) Name() Name { return NamePostThread }
func (t PostThread) Params() Params {
	return Params{"handle": t.Handle, "rkey": t.Rkey}
}
func (PostThread) target() {}

// PostUpvotedBy lists who upvoted a post.
type PostUpvotedBy struct{ Handle, Rkey string }

func (PostUpvotedBy) Name() Name { return NamePostUpvotedBy }
func (t PostUpvotedBy) Params() Params {
	return Params{"handle": t.Handle, "rkey": t.Rkey}
}
func (PostUpvotedBy) target() {}

// PostRepostedBy lists who reposted a post.
type PostRepostedBy struct{ Handle, Rkey string }

func (PostRepostedBy) Name() Name { return NamePostRepostedBy }
func (t PostRepostedBy) Params() Params {
	return Params{"handle": t.Handle, "rkey": t.Rkey}
}
func (PostRepostedBy) target() {}

// Debug is the developer debug page.
type Debug struct{}

func (Debug) Name() Name     { return NameDebug }
func (Debug) Params() Params { return Params{} }
func (Debug) target()        {}

// Log shows the application log.
type Log struct{}

func (Log) Name() Name     { return NameLog }
func (Log) Params() Params { return Params{} }
func (Log) target()        {}

// Support is the support page.
type Support struct{}

func (Support) Name() Name     { return NameSupport }
func (Support) Params() Params { return Params{} }
func (Support) target()        {}

// PrivacyPolicy is the privacy policy page.
type PrivacyPolicy struct{}

func (PrivacyPolicy) Name() Name     { return NamePrivacyPolicy }
func (PrivacyPolicy) Params() Params { return Params{} }
func (PrivacyPolicy) target()        {}

// NotFound is produced for any path no pattern matches. Path keeps what was
// asked for so the screen can show it.
type NotFound struct{ Path string }

func (NotFound) Name() Name     { return NameNotFound }
func (NotFound) Params() Params { return Params{} }
func (NotFound) target()        {}
