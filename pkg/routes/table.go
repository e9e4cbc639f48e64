package routes

// Table is the default route table in match priority order. Patterns use
// ":name" segments for parameters.
var Table = []Route{
	{Name: NameHome, Pattern: "/", Icon: "⌂",
		title:     fixed("Home"),
		newTarget: func(Params) Target { return Home{} }},
	{Name: NameSearch, Pattern: "/search", Icon: "⌕",
		title:     fixed("Search"),
		newTarget: func(Params) Target { return Search{} }},
	{Name: NameNotifications, Pattern: "/notifications", Icon: "◉",
		title:     fixed("Notifications"),
		newTarget: func(Params) Target { return Notifications{} }},
	{Name: NameSettings, Pattern: "/settings", Icon: "⚙",
		title:     fixed("Settings"),
		newTarget: func(Params) Target { return Settings{} }},
	{Name: NameProfile, Pattern: "/profile/:handle", Icon: "@",
		title:     func(p Params) string { return "@" + p["handle"] },
		newTarget: func(p Params) Target { return Profile{Handle: p["handle"]} }},
	{Name: NameProfileFollowers, Pattern: "/profile/:handle/followers", Icon: "⇠",
		title:     func(p Params) string { return "Followers of @" + p["handle"] },
		newTarget: func(p Params) Target { return ProfileFollowers{Handle: p["handle"]} }},
	{Name: NameProfileFollows, Pattern: "/profile/:handle/follows", Icon: "⇢",
		title:     func(p Params) string { return "Followed by @" + p["handle"] },
		newTarget: func(p Params) Target { return ProfileFollows{Handle: p["handle"]} }},
	{Name: NamePostThread, Pattern: "/profile/:handle/post/:rkey", Icon: "✎",
		title:     func(p Params) string { return "Post by @" + p["handle"] },
		newTarget: func(p Params) Target { return PostThread{Handle: p["handle"], Rkey: p["rkey"]} }},
	{Name: NamePostUpvotedBy, Pattern: "/profile/:handle/post/:rkey/upvoted-by", Icon: "♥",
		title:     fixed("Upvoted by"),
		newTarget: func(p Params) Target { return PostUpvotedBy{Handle: p["handle"], Rkey: p["rkey"]} }},
	{Name: NamePostRepostedBy, Pattern: "/profile/:handle/post/:rkey/reposted-by", Icon: "⟲",
		title:     fixed("Reposted by"),
		newTarget: func(p Params) Target { return PostRepostedBy{Handle: p["handle"], Rkey: p["rkey"]} }},
	{Name: NameDebug, Pattern: "/sys/debug", Icon: "⚑",
		title:     fixed("Debug"),
		newTarget: func(Params) Target { return Debug{} }},
	{Name: NameLog, Pattern: "/sys/log", Icon: "≡",
		title:     fixed("Log"),
		newTarget: func(Params) Target { return Log{} }},
	{Name: NameSupport, Pattern: "/support", Icon: "?",
		title:     fixed("Support"),
		newTarget: func(Params) Target { return Support{} }},
	{Name: NamePrivacyPolicy, Pattern: "/support/privacy", Icon: "§",
		title:     fixed("Privacy Policy"),
		newTarget: func(Params) Target { return PrivacyPolicy{} }},
}

// notFound describes the fallback route. It is never registered, so it can
// be neither matched nor built.
var notFound = Route{Name: NameNotFound, Icon: "✕", title: fixed("Not Found")}

func fixed(s string) func(Params) string {
	return func(Params) string { return s }
}
