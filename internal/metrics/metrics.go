package metrics

const Namespace = "memehub"
