package mime

type MIME = string

// HTML is the only type the worker serves: no content sniffing is done, every
// response carries it regardless of the file extension.
const HTML MIME = "text/html"
