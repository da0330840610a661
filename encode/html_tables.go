package encode

// globalAttrs may appear on any element.
var globalAttrs = []string{
	"class", "id", "slot", "accesskey", "autocapitalize", "autofocus",
	"contenteditable", "dir", "draggable", "enterkeyhint", "hidden",
	"inputmode", "is", "itemid", "itemprop", "itemref", "itemscope",
	"itemtype", "lang", "nonce", "spellcheck", "style", "tabindex", "title",
	"translate",
}

var eventHandlerAttrs = []string{
	"onabort", "onauxclick", "onblur", "oncancel", "oncanplay",
	"oncanplaythrough", "onchange", "onclick", "onclose", "oncontextmenu",
	"oncopy", "oncuechange", "oncut", "ondblclick", "ondrag", "ondragend",
	"ondragenter", "ondragexit", "ondragleave", "ondragover", "ondragstart",
	"ondrop", "ondurationchange", "onemptied", "onended", "onerror",
	"onfocus", "onformdata", "oninput", "oninvalid", "onkeydown",
	"onkeypress", "onkeyup", "onload", "onloadeddata", "onloadedmetadata",
	"onloadstart", "onmousedown", "onmouseenter", "onmouseleave",
	"onmousemove", "onmouseout", "onmouseover", "onmouseup", "onpaste",
	"onpause", "onplay", "onplaying", "onprogress", "onratechange", "onreset",
	"onresize", "onscroll", "onsecuritypolicyviolation", "onseeked",
	"onseeking", "onselect", "onslotchange", "onstalled", "onsubmit",
	"onsuspend", "ontimeupdate", "ontoggle", "onvolumechange", "onwaiting",
	"onwheel",
}

const dataAttrPrefix = "data-"

// elementAttrs lists the attributes specific to an element.
var elementAttrs = map[string][]string{
	"a": {
		"href", "target", "download", "ping", "rel", "hreflang", "type",
		"referrerpolicy",
	},
	"area": {
		"alt", "coords", "shape", "href", "target", "download", "ping", "rel",
		"referrerpolicy",
	},
	"audio": {
		"src", "crossorigin", "preload", "autoplay", "loop", "muted", "controls",
	},
	"base": {
		"href", "target",
	},
	"blockquote": {
		"cite",
	},
	"body": {
		"onafterprint", "onbeforeprint", "onbeforeunload", "onhashchange",
		"onlanguagechange", "onmessage", "onmessageerror", "onoffline",
		"ononline", "onpagehide", "onpageshow", "onpopstate",
		"onrejectionhandled", "onstorage", "onunhandledrejection", "onunload",
	},
	"button": {
		"disabled", "form", "formaction", "formenctype", "formmethod",
		"formnovalidate", "formtarget", "name", "type", "value",
	},
	"canvas": {
		"width", "height",
	},
	"col": {
		"span",
	},
	"colgroup": {
		"span",
	},
	"data": {
		"value",
	},
	"del": {
		"cite", "datetime",
	},
	"details": {
		"open",
	},
	"dialog": {
		"open",
	},
	"embed": {
		"src", "type", "width", "height",
	},
	"fieldset": {
		"disabled", "form", "name",
	},
	"form": {
		"accept-charset", "action", "autocomplete", "enctype", "method", "name",
		"novalidate", "target",
	},
	"html": {
		"manifest",
	},
	"iframe": {
		"src", "srcdoc", "name", "sandbox", "allow", "allowfullscreen",
		"allowpaymentrequest", "width", "height", "referrerpolicy", "loading",
	},
	"img": {
		"alt", "src", "srcset", "sizes", "crossorigin", "usemap", "ismap",
		"width", "height", "referrerpolicy", "decoding", "loading",
	},
	"input": {
		"accept", "alt", "autocomplete", "checked", "dirname", "disabled",
		"form", "formaction", "formenctype", "formmethod", "formnovalidate",
		"formtarget", "height", "list", "max", "maxlength", "min", "minlength",
		"multiple", "name", "pattern", "placeholder", "readonly", "required",
		"size", "src", "step", "type", "value", "width",
	},
	"ins": {
		"cite", "datetime",
	},
	"label": {
		"for",
	},
	"li": {
		"value",
	},
	"link": {
		"href", "crossorigin", "rel", "as", "media", "hreflang", "type", "sizes",
		"imagesrcset", "imagesizes", "referrerpolicy", "integrity", "color",
		"disabled",
	},
	"map": {
		"name",
	},
	"meta": {
		"name", "http-equiv", "content", "charset",
	},
	"meter": {
		"value", "min", "max", "low", "high", "optimum",
	},
	"object": {
		"data", "type", "name", "usemap", "form", "width", "height",
	},
	"ol": {
		"reversed", "start", "type",
	},
	"optgroup": {
		"disabled", "label",
	},
	"option": {
		"disabled", "label", "selected", "value",
	},
	"output": {
		"for", "form", "name",
	},
	"param": {
		"name", "value",
	},
	"progress": {
		"value", "max",
	},
	"q": {
		"cite",
	},
	"script": {
		"src", "type", "async", "defer", "crossorigin", "integrity",
		"referrerpolicy",
	},
	"select": {
		"autocomplete", "disabled", "form", "multiple", "name", "required",
		"size",
	},
	"slot": {
		"name",
	},
	"source": {
		"src", "type", "srcset", "sizes", "media",
	},
	"style": {
		"media",
	},
	"td": {
		"colspan", "rowspan", "headers",
	},
	"textarea": {
		"cols", "dirname", "disabled", "form", "maxlength", "minlength", "name",
		"placeholder", "readonly", "required", "rows", "wrap",
	},
	"th": {
		"colspan", "rowspan", "headers", "scope", "abbr",
	},
	"time": {
		"datetime",
	},
	"track": {
		"default", "kind", "label", "src", "srclang",
	},
	"video": {
		"src", "crossorigin", "poster", "preload", "autoplay", "playsinline",
		"loop", "muted", "controls", "width", "height",
	},
}
